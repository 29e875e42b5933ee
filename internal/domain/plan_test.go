package domain

import (
	"path/filepath"
	"testing"
)

func mediaFile(root, rel string) MediaFile {
	return MediaFile{
		AbsPath: filepath.Join(root, rel),
		RelPath: rel,
		Name:    filepath.Base(rel),
	}
}

func TestPlanFixes_MovesFileFromCameraSubfolder(t *testing.T) {
	root := filepath.Join("/lib")
	rules := testRuleset()

	files := []MediaFile{
		mediaFile(root, filepath.Join("2024-01-15", "Camera01", "video.insv")),
	}

	plan := PlanFixes(root, files, []string{"2024-01-15"}, rules)

	wantDir := filepath.Join(root, "2024-01-15", "insta360")
	if len(plan.DirsToCreate) != 1 || plan.DirsToCreate[0] != wantDir {
		t.Fatalf("DirsToCreate = %v, want [%s]", plan.DirsToCreate, wantDir)
	}
	if len(plan.Moves) != 1 {
		t.Fatalf("Moves = %v, want exactly one", plan.Moves)
	}
	want := Move{
		Src: filepath.Join(root, "2024-01-15", "Camera01", "video.insv"),
		Dst: filepath.Join(wantDir, "video.insv"),
	}
	if plan.Moves[0] != want {
		t.Errorf("Moves[0] = %+v, want %+v", plan.Moves[0], want)
	}
}

func TestPlanFixes_CompliantFileProducesEmptyPlan(t *testing.T) {
	root := "/lib"
	files := []MediaFile{
		mediaFile(root, filepath.Join("2024-01-15", "insta360", "video.insv")),
	}

	plan := PlanFixes(root, files, []string{"2024-01-15"}, testRuleset())

	if !plan.Empty() {
		t.Errorf("plan should be empty, got %+v", plan)
	}
}

func TestPlanFixes_FileInDateFolderRoot(t *testing.T) {
	root := "/lib"
	files := []MediaFile{
		mediaFile(root, filepath.Join("2024-01-15", "video.insv")),
	}

	plan := PlanFixes(root, files, []string{"2024-01-15"}, testRuleset())

	if len(plan.Moves) != 1 {
		t.Fatalf("want one move, got %v", plan.Moves)
	}
	wantDst := filepath.Join(root, "2024-01-15", "insta360", "video.insv")
	if plan.Moves[0].Dst != wantDst {
		t.Errorf("Dst = %q, want %q", plan.Moves[0].Dst, wantDst)
	}
}

func TestPlanFixes_OutsideDateFolderExcluded(t *testing.T) {
	root := "/lib"
	files := []MediaFile{
		mediaFile(root, filepath.Join("not-a-date", "video.insv")),
		mediaFile(root, "stray.insv"),
	}

	plan := PlanFixes(root, files, []string{"not-a-date"}, testRuleset())

	if len(plan.Moves) != 0 {
		t.Errorf("files outside date folders must be excluded, got %v", plan.Moves)
	}
}

func TestPlanFixes_UnmanagedFilesIgnored(t *testing.T) {
	root := "/lib"
	files := []MediaFile{
		mediaFile(root, filepath.Join("2024-01-15", "video.mp4")),
		mediaFile(root, filepath.Join("2024-01-15", "metadata.json")),
	}

	plan := PlanFixes(root, files, []string{"2024-01-15"}, testRuleset())

	if !plan.Empty() {
		t.Errorf("unmanaged files must not be planned, got %+v", plan)
	}
}

func TestPlanFixes_SuffixedDateFolder(t *testing.T) {
	root := "/lib"
	folder := "2023-03-03 Moggs in the dark"
	files := []MediaFile{
		mediaFile(root, filepath.Join(folder, "Camera01", "VID_20230303_193624_00_001.insv")),
	}

	plan := PlanFixes(root, files, []string{folder}, testRuleset())

	if len(plan.Moves) != 1 {
		t.Fatalf("want one move, got %v", plan.Moves)
	}
	wantDst := filepath.Join(root, folder, "insta360", "VID_20230303_193624_00_001.insv")
	if plan.Moves[0].Dst != wantDst {
		t.Errorf("Dst = %q, want %q", plan.Moves[0].Dst, wantDst)
	}
}

func TestPlanFixes_WarnsAboutNonDateTopDirs(t *testing.T) {
	root := "/lib"
	plan := PlanFixes(root, nil, []string{"2024-01-15", "random-folder", "Camera01"}, testRuleset())

	want := []string{"Camera01", "random-folder"}
	if len(plan.Warnings) != len(want) {
		t.Fatalf("Warnings = %v, want %v", plan.Warnings, want)
	}
	for i := range want {
		if plan.Warnings[i] != want[i] {
			t.Errorf("Warnings[%d] = %q, want %q", i, plan.Warnings[i], want[i])
		}
	}
}

func TestPlanFixes_DeterministicOrdering(t *testing.T) {
	root := "/lib"
	files := []MediaFile{
		mediaFile(root, filepath.Join("2024-02-01", "b.insv")),
		mediaFile(root, filepath.Join("2024-01-15", "z.insv")),
		mediaFile(root, filepath.Join("2024-01-15", "a.insv")),
	}

	plan := PlanFixes(root, files, []string{"2024-01-15", "2024-02-01"}, testRuleset())

	if len(plan.DirsToCreate) != 2 || plan.DirsToCreate[0] > plan.DirsToCreate[1] {
		t.Errorf("DirsToCreate not sorted: %v", plan.DirsToCreate)
	}
	if len(plan.Moves) != 3 {
		t.Fatalf("want 3 moves, got %d", len(plan.Moves))
	}
	for i := 1; i < len(plan.Moves); i++ {
		if plan.Moves[i-1].Src > plan.Moves[i].Src {
			t.Errorf("Moves not sorted by source: %v", plan.Moves)
		}
	}
}
