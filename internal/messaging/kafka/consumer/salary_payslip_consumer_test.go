package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-payroll/internal/events"
	salaryerrors "go-payroll/internal/salary/errors"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReader struct {
	queue     []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type fakeRenderer struct {
	results map[string]error
}

func (f fakeRenderer) RenderPayslip(ctx context.Context, id string) ([]byte, string, error) {
	if err := f.results[id]; err != nil {
		return nil, "", err
	}
	return []byte("%PDF-1.3 " + id), "payslip_" + id + ".pdf", nil
}

func eventMessage(t *testing.T, offset int64, recordID string) kafkago.Message {
	t.Helper()
	raw, err := json.Marshal(events.SalaryRecordCreatedEvent{
		EventType:      events.SalaryRecordCreatedType,
		SalaryRecordID: recordID,
		EmployeeID:     "EMP0001",
		SalaryPeriod:   "2025-01",
	})
	require.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: raw}
}

func TestConsumeSalaryRecordCreated(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	reader := &fakeReader{
		cancel: cancel,
		queue: []kafkago.Message{
			eventMessage(t, 1, "rec-ok"),
			{Offset: 2, Value: []byte("not json")},
			eventMessage(t, 3, "rec-gone"),
			eventMessage(t, 4, "rec-broken"),
		},
	}
	renderer := fakeRenderer{results: map[string]error{
		"rec-gone":   salaryerrors.ErrSalaryRecordNotFound,
		"rec-broken": errors.New("db down"),
	}}

	ConsumeSalaryRecordCreated(ctx, reader, renderer, DirArchive{Dir: dir}, zap.NewNop())

	offsets := make([]int64, 0, len(reader.committed))
	for _, m := range reader.committed {
		offsets = append(offsets, m.Offset)
	}
	// pesan gagal render tidak di-commit supaya bisa diproses ulang
	assert.Equal(t, []int64{1, 2, 3}, offsets)

	body, err := os.ReadFile(filepath.Join(dir, "payslip_rec-ok.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 rec-ok", string(body))

	_, err = os.Stat(filepath.Join(dir, "payslip_rec-broken.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestDirArchive_SaveStripsDirectories(t *testing.T) {
	dir := t.TempDir()

	path, err := DirArchive{Dir: filepath.Join(dir, "nested")}.Save("../../escape.pdf", []byte("x"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "escape.pdf"), path)
}
