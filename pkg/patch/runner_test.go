package patch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/superfix/pkg/patch"
	"github.com/walteh/superfix/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// 🧪 faultyFileManager fails reads and writes for selected paths
type faultyFileManager struct {
	contents   map[string]string
	failReads  map[string]bool
	failWrites map[string]bool
	writes     int
}

func (f *faultyFileManager) FileExists(ctx context.Context, path string) (bool, error) {
	_, ok := f.contents[path]
	return ok, nil
}

func (f *faultyFileManager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if f.failReads[path] {
		return nil, errors.Errorf("reading file: permission denied")
	}
	return []byte(f.contents[path]), nil
}

func (f *faultyFileManager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	if f.failWrites[path] {
		return errors.Errorf("writing temp file: disk full")
	}
	f.writes++
	f.contents[path] = string(content)
	return nil
}

// A read or write failure is isolated to its file: the batch continues
// and the remaining targets are still processed and counted.
func TestPatcher_Run_FailureIsolation(t *testing.T) {
	files := &faultyFileManager{
		contents: map[string]string{
			"bad-read.java":  "        super(1.0);\n",
			"bad-write.java": "        super(2.0);\n",
			"good.java":      "        super(3.0);\n",
		},
		failReads:  map[string]bool{"bad-read.java": true},
		failWrites: map[string]bool{"bad-write.java": true},
	}

	patcher, err := patch.New(patch.Options{
		Targets:  []string{"bad-read.java", "bad-write.java", "good.java"},
		Rewriter: rewrite.NewSuperCallRewriter(),
		Files:    files,
	})
	require.NoError(t, err)

	summary, err := patcher.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Results, 3)

	assert.Equal(t, patch.OutcomeFailed, summary.Results[0].Outcome)
	assert.ErrorContains(t, summary.Results[0].Err, "permission denied")

	assert.Equal(t, patch.OutcomeFailed, summary.Results[1].Outcome)
	assert.ErrorContains(t, summary.Results[1].Err, "disk full")

	assert.Equal(t, patch.OutcomeFixed, summary.Results[2].Outcome)

	assert.Equal(t, 1, summary.Fixed)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 1, files.writes)
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome patch.Outcome
		want    string
	}{
		{patch.OutcomeSkipped, "skipped"},
		{patch.OutcomeFixed, "fixed"},
		{patch.OutcomeUnchanged, "unchanged"},
		{patch.OutcomeFailed, "failed"},
		{patch.OutcomeUnknown, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.outcome.String())
	}
}
