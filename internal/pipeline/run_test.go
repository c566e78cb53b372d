package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/packet-intake/internal/browser"
	"github.com/jonathan/packet-intake/internal/documents"
	"github.com/jonathan/packet-intake/internal/types"
	"github.com/jonathan/packet-intake/internal/workflow"
)

const clientDocText = "Client Packet\nName: Mr. John Smith\nDate of Birth: 01/15/1980"
const employeeDocText = "Employee Packet\nName: Dr. Sarah Johnson\nPosition: Caregiver"

// fakeSource serves documents from memory.
type fakeSource struct {
	forms     []documents.Form
	listErr   error
	docs      map[string][]byte
	downloads []string
}

func (s *fakeSource) ListRecent(_ context.Context, _ int) ([]documents.Form, error) {
	return s.forms, s.listErr
}

func (s *fakeSource) Download(_ context.Context, id string) ([]byte, error) {
	s.downloads = append(s.downloads, id)
	data, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s not found", id)
	}
	return data, nil
}

// stubDriver reports a signed-in location and accepts every interaction, so
// record creation succeeds and care-plan location fails (nothing visible).
type stubDriver struct {
	closed int
}

func (d *stubDriver) Navigate(context.Context, string) error             { return nil }
func (d *stubDriver) WaitIdle(context.Context) error                     { return nil }
func (d *stubDriver) Fill(context.Context, string, string) error         { return nil }
func (d *stubDriver) Click(context.Context, string) error                { return nil }
func (d *stubDriver) SelectOption(context.Context, string, string) error { return nil }
func (d *stubDriver) SetChecked(context.Context, string, bool) error     { return nil }
func (d *stubDriver) IsVisible(context.Context, string) bool             { return false }
func (d *stubDriver) TextContent(context.Context, string) (string, error) {
	return "", errors.New("no text")
}
func (d *stubDriver) Location(context.Context) (string, error) {
	return "https://ui.example.com/dashboard", nil
}
func (d *stubDriver) Close() error {
	d.closed++
	return nil
}

func testOptions(source *fakeSource) (Options, *[]*stubDriver) {
	var sessions []*stubDriver
	opts := Options{
		Documents: source,
		NewSession: func(context.Context) (browser.Driver, error) {
			drv := &stubDriver{}
			sessions = append(sessions, drv)
			return drv, nil
		},
		UIBaseURL:     "https://ui.example.com",
		UICredentials: workflow.Credentials{Username: "agent@example.com", Password: "secret"},
		ListLimit:     50,
	}
	return opts, &sessions
}

func TestProcessDocuments_ExplicitIDs(t *testing.T) {
	source := &fakeSource{docs: map[string][]byte{
		"f-1": []byte(clientDocText),
		"f-2": []byte(employeeDocText),
	}}
	opts, sessions := testOptions(source)

	results, err := ProcessDocuments(context.Background(), opts, []string{"f-1", "f-2"})

	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "f-1", results[0].ID)
	assert.Equal(t, types.PacketClient, results[0].PacketType)
	require.NotNil(t, results[0].Result)
	assert.True(t, results[0].Result.Success)

	assert.Equal(t, "f-2", results[1].ID)
	assert.Equal(t, types.PacketEmployee, results[1].PacketType)
	require.NotNil(t, results[1].Result)
	assert.True(t, results[1].Result.Success)

	assert.Equal(t, []string{"f-1", "f-2"}, source.downloads, "documents processed in order")
	require.Len(t, *sessions, 2, "one fresh browser session per document")
	for _, drv := range *sessions {
		assert.Positive(t, drv.closed, "every session is torn down")
	}
}

func TestProcessDocuments_EmptyIDsResolveFromRecentList(t *testing.T) {
	source := &fakeSource{
		forms: []documents.Form{{ID: "f-7"}, {ID: "f-8"}},
		docs: map[string][]byte{
			"f-7": []byte(clientDocText),
			"f-8": []byte(clientDocText),
		},
	}
	opts, _ := testOptions(source)

	results, err := ProcessDocuments(context.Background(), opts, nil)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "f-7", results[0].ID)
	assert.Equal(t, "f-8", results[1].ID)
}

func TestProcessDocuments_ListFailure(t *testing.T) {
	source := &fakeSource{listErr: errors.New("service unavailable")}
	opts, _ := testOptions(source)

	_, err := ProcessDocuments(context.Background(), opts, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "working set")
}

func TestProcessDocuments_PerDocumentFailureIsolation(t *testing.T) {
	source := &fakeSource{docs: map[string][]byte{
		"f-1": []byte(clientDocText),
		"f-3": []byte(clientDocText),
	}}
	opts, _ := testOptions(source)

	results, err := ProcessDocuments(context.Background(), opts, []string{"f-1", "f-2", "f-3"})

	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Empty(t, results[0].Error)
	assert.Contains(t, results[1].Error, "not found")
	assert.Nil(t, results[1].Result)
	assert.Empty(t, results[2].Error, "a failing document never aborts the ones after it")
}

func TestProcessDocuments_SessionFailure(t *testing.T) {
	source := &fakeSource{docs: map[string][]byte{"f-1": []byte(clientDocText)}}
	opts, _ := testOptions(source)
	opts.NewSession = func(context.Context) (browser.Driver, error) {
		return nil, errors.New("chrome not found")
	}

	results, err := ProcessDocuments(context.Background(), opts, []string{"f-1"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Error, "browser session")
	assert.Equal(t, types.PacketClient, results[0].PacketType,
		"classification happens before the workflow and is reported even on failure")
}

func TestProcessDocuments_CarePlanFailureReportedNotFatal(t *testing.T) {
	// The stub driver makes record creation succeed but leaves nothing
	// visible in the client list, so the care-plan step fails.
	source := &fakeSource{docs: map[string][]byte{"f-1": []byte(clientDocText)}}
	opts, _ := testOptions(source)

	results, err := ProcessDocuments(context.Background(), opts, []string{"f-1"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Result)
	assert.True(t, results[0].Result.Success)
	assert.NotEmpty(t, results[0].Result.CarePlanError)
}
