package checkpointer

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
	"sfneuman.com/gridlearn/table"
	ts "sfneuman.com/gridlearn/timestep"
)

func TestNStepCheckpointsEveryNSteps(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "table")

	values := table.NewActionValue(4)
	state := mat.NewVecDense(2, []float64{9, 1})
	values.Set(state, 3, -1.5)

	check := NewNStep(2, values, FilenameEnumerator(0, name, ".bin"))

	obs := mat.NewVecDense(2, nil)
	for number := 1; number <= 4; number++ {
		step := ts.New(ts.Mid, -1, 1, obs, number)
		if err := check.Checkpoint(step); err != nil {
			t.Fatalf("checkpoint failed on step %v: %v", number, err)
		}
	}

	// Steps 2 and 4 are checkpointed
	if _, err := os.Stat(name + "1.bin"); err != nil {
		t.Errorf("missing first checkpoint: %v", err)
	}
	if _, err := os.Stat(name + "2.bin"); err != nil {
		t.Errorf("missing second checkpoint: %v", err)
	}
	if _, err := os.Stat(name + "3.bin"); err == nil {
		t.Error("checkpointed more often than every 2 steps")
	}

	// A checkpoint restores the table's estimates
	file, err := os.Open(name + "1.bin")
	if err != nil {
		t.Fatalf("could not open checkpoint: %v", err)
	}
	defer file.Close()

	var loaded table.ActionValue
	if err := gob.NewDecoder(file).Decode(&loaded); err != nil {
		t.Fatalf("could not decode checkpoint: %v", err)
	}
	if loaded.NumActions() != 4 {
		t.Errorf("loaded %v actions, want 4", loaded.NumActions())
	}
	if got := loaded.At(state, 3); got != -1.5 {
		t.Errorf("loaded estimate %v, want -1.5", got)
	}
}

func TestFileTimerNamesFiles(t *testing.T) {
	name := FileTimer("checkpoint", ".bin")()
	if !strings.HasPrefix(name, "checkpoint-") ||
		!strings.HasSuffix(name, ".bin") {
		t.Errorf("got filename %v", name)
	}
}
