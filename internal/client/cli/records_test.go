package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clinicsync/pkg/api"
)

func TestClientCommands(t *testing.T) {
	ctx := context.Background()
	c, out := testCli(t, "", nil, nil)

	require.NoError(t, execute(t, c, "client", "list"))
	assert.Contains(t, out.String(), "No clients found")

	require.NoError(t, execute(t, c, "client", "add", "--first", "Jane", "--last", "Doe", "--dob", "1990-04-12"))
	assert.Contains(t, out.String(), "(Jane Doe)")

	clients, err := c.dataService.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	id := clients[0].ID
	require.NotNil(t, clients[0].DateOfBirth)
	assert.Equal(t, "1990-04-12", clients[0].DateOfBirth.Format(dateLayout))

	// edit меняет только переданные флаги
	require.NoError(t, execute(t, c, "client", "edit", id, "--last", "Smith", "--status", "inactive"))
	got, err := c.dataService.GetClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "Smith", got.LastName)
	assert.Equal(t, api.ClientStatusInactive, got.Status)
	assert.NotNil(t, got.DateOfBirth)

	out.Reset()
	require.NoError(t, execute(t, c, "client", "list"))
	assert.Contains(t, out.String(), id)
	assert.Contains(t, out.String(), "Jane Smith")
	assert.Contains(t, out.String(), "pending")
}

func TestClientAdd_Invalid(t *testing.T) {
	c, _ := testCli(t, "", nil, nil)

	assert.ErrorContains(t, execute(t, c, "client", "add", "--first", "Jane"), "last name cannot be empty")
	assert.ErrorContains(t, execute(t, c, "client", "add", "--first", "Jane", "--last", "Doe", "--dob", "12/04/1990"), "expected YYYY-MM-DD")
	assert.Error(t, execute(t, c, "client", "edit"))
}

func TestSessionAndNoteCommands(t *testing.T) {
	ctx := context.Background()
	c, out := testCli(t, "", nil, nil)

	require.NoError(t, execute(t, c, "client", "add", "--first", "Jane", "--last", "Doe"))
	clients, err := c.dataService.ListClients(ctx)
	require.NoError(t, err)
	clientID := clients[0].ID

	assert.ErrorContains(t, execute(t, c, "session", "add", "--client", clientID, "--at", "tomorrow"), "expected RFC3339")
	require.NoError(t, execute(t, c, "session", "add", "--client", clientID, "--at", "2025-06-01T10:00:00+02:00"))

	sessions, err := c.dataService.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	sess := sessions[0]
	assert.Equal(t, 50, sess.DurationMinutes)
	assert.Equal(t, api.SessionTypeIndividual, sess.Type)
	assert.Equal(t, "2025-06-01T08:00:00Z", sess.ScheduledAt.Format("2006-01-02T15:04:05Z07:00"))

	require.NoError(t, execute(t, c, "session", "edit", sess.ID, "--status", "completed", "--duration", "60"))
	sessGot, err := c.dataService.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, api.SessionStatusCompleted, sessGot.Status)
	assert.Equal(t, 60, sessGot.DurationMinutes)

	require.NoError(t, execute(t, c, "note", "add", "--client", clientID, "--session", sess.ID,
		"--content", "Discussed coping strategies.", "--risk", "low", "--tags", "anxiety,cbt"))
	notes, err := c.dataService.ListProgressNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, []string{"anxiety", "cbt"}, notes[0].Tags)
	require.NotNil(t, notes[0].SessionID)
	assert.Equal(t, sess.ID, *notes[0].SessionID)

	require.NoError(t, execute(t, c, "note", "edit", notes[0].ID, "--status", "signed"))
	note, err := c.dataService.GetProgressNote(ctx, notes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, api.NoteStatusSigned, note.Status)
	assert.Equal(t, api.RiskLevelLow, note.RiskLevel)

	out.Reset()
	require.NoError(t, execute(t, c, "session", "list"))
	assert.Contains(t, out.String(), "2025-06-01 08:00")
	out.Reset()
	require.NoError(t, execute(t, c, "note", "list"))
	assert.Contains(t, out.String(), sess.ID)
	assert.Contains(t, out.String(), "signed")
}
