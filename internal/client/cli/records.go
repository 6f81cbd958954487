package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/clinicsync/internal/models"
	"github.com/iudanet/clinicsync/pkg/api"
)

const dateLayout = "2006-01-02"

type clientFlags struct {
	firstName   string
	lastName    string
	email       string
	phone       string
	dateOfBirth string
	status      string
}

type sessionFlags struct {
	clientID    string
	scheduledAt string
	location    string
	sessionType string
	status      string
	duration    int
}

type noteFlags struct {
	clientID  string
	sessionID string
	content   string
	riskLevel string
	status    string
	tags      []string
}

func clientCommand(get func() *Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	var add clientFlags
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runClientAdd(cmd.Context(), add)
		},
	}
	bindClientFlags(addCmd, &add)

	var edit clientFlags
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a client locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runClientEdit(cmd.Context(), args[0], edit, cmd.Flags().Changed)
		},
	}
	bindClientFlags(editCmd, &edit)
	editCmd.Flags().StringVar(&edit.status, "status", "", "active|inactive|discharged")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List local clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runClientList(cmd.Context())
		},
	}

	cmd.AddCommand(addCmd, editCmd, listCmd)
	return cmd
}

func bindClientFlags(cmd *cobra.Command, f *clientFlags) {
	cmd.Flags().StringVar(&f.firstName, "first", "", "first name")
	cmd.Flags().StringVar(&f.lastName, "last", "", "last name")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&f.dateOfBirth, "dob", "", "date of birth (YYYY-MM-DD)")
}

func (c *Cli) runClientAdd(ctx context.Context, f clientFlags) error {
	dob, err := parseDate(f.dateOfBirth)
	if err != nil {
		return err
	}
	client := &models.Client{
		FirstName:   f.firstName,
		LastName:    f.lastName,
		Email:       optional(f.email),
		Phone:       optional(f.phone),
		DateOfBirth: dob,
	}
	if err := c.dataService.AddClient(ctx, client); err != nil {
		return err
	}
	c.io.Printf("✓ Client %s added (%s). Run 'clinicsync sync' to upload.\n", client.ID, client.FullName())
	return nil
}

func (c *Cli) runClientEdit(ctx context.Context, id string, f clientFlags, changed func(string) bool) error {
	client, err := c.dataService.GetClient(ctx, id)
	if err != nil {
		return err
	}
	if changed("first") {
		client.FirstName = f.firstName
	}
	if changed("last") {
		client.LastName = f.lastName
	}
	if changed("email") {
		client.Email = optional(f.email)
	}
	if changed("phone") {
		client.Phone = optional(f.phone)
	}
	if changed("dob") {
		if client.DateOfBirth, err = parseDate(f.dateOfBirth); err != nil {
			return err
		}
	}
	if changed("status") {
		client.Status = api.ClientStatus(f.status)
	}
	if err := c.dataService.EditClient(ctx, client); err != nil {
		return err
	}
	c.io.Printf("✓ Client %s updated.\n", client.ID)
	return nil
}

func (c *Cli) runClientList(ctx context.Context) error {
	clients, err := c.dataService.ListClients(ctx)
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		c.io.Println("No clients found. Use 'clinicsync client add' to add one.")
		return nil
	}
	return c.renderTable(clientListTmpl, clients)
}

func sessionCommand(get func() *Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage sessions",
	}

	var add sessionFlags
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runSessionAdd(cmd.Context(), add)
		},
	}
	bindSessionFlags(addCmd, &add)

	var edit sessionFlags
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a session locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runSessionEdit(cmd.Context(), args[0], edit, cmd.Flags().Changed)
		},
	}
	bindSessionFlags(editCmd, &edit)
	editCmd.Flags().StringVar(&edit.status, "status", "", "scheduled|completed|cancelled|no_show")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List local sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runSessionList(cmd.Context())
		},
	}

	cmd.AddCommand(addCmd, editCmd, listCmd)
	return cmd
}

func bindSessionFlags(cmd *cobra.Command, f *sessionFlags) {
	cmd.Flags().StringVar(&f.clientID, "client", "", "client id")
	cmd.Flags().StringVar(&f.scheduledAt, "at", "", "start time (RFC3339)")
	cmd.Flags().IntVar(&f.duration, "duration", 50, "duration in minutes")
	cmd.Flags().StringVar(&f.sessionType, "type", string(api.SessionTypeIndividual), "individual|couples|family|group|intake")
	cmd.Flags().StringVar(&f.location, "location", "", "location")
}

func (c *Cli) runSessionAdd(ctx context.Context, f sessionFlags) error {
	at, err := time.Parse(time.RFC3339, f.scheduledAt)
	if err != nil {
		return fmt.Errorf("invalid --at %q: expected RFC3339", f.scheduledAt)
	}
	sess := &models.Session{
		ClientID:        f.clientID,
		ScheduledAt:     at.UTC(),
		DurationMinutes: f.duration,
		Type:            api.SessionType(f.sessionType),
		Location:        optional(f.location),
	}
	if err := c.dataService.AddSession(ctx, sess); err != nil {
		return err
	}
	c.io.Printf("✓ Session %s added.\n", sess.ID)
	return nil
}

func (c *Cli) runSessionEdit(ctx context.Context, id string, f sessionFlags, changed func(string) bool) error {
	sess, err := c.dataService.GetSession(ctx, id)
	if err != nil {
		return err
	}
	if changed("client") {
		sess.ClientID = f.clientID
	}
	if changed("at") {
		at, err := time.Parse(time.RFC3339, f.scheduledAt)
		if err != nil {
			return fmt.Errorf("invalid --at %q: expected RFC3339", f.scheduledAt)
		}
		sess.ScheduledAt = at.UTC()
	}
	if changed("duration") {
		sess.DurationMinutes = f.duration
	}
	if changed("type") {
		sess.Type = api.SessionType(f.sessionType)
	}
	if changed("location") {
		sess.Location = optional(f.location)
	}
	if changed("status") {
		sess.Status = api.SessionStatus(f.status)
	}
	if err := c.dataService.EditSession(ctx, sess); err != nil {
		return err
	}
	c.io.Printf("✓ Session %s updated.\n", sess.ID)
	return nil
}

func (c *Cli) runSessionList(ctx context.Context) error {
	sessions, err := c.dataService.ListSessions(ctx)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		c.io.Println("No sessions found. Use 'clinicsync session add' to schedule one.")
		return nil
	}
	return c.renderTable(sessionListTmpl, sessions)
}

func noteCommand(get func() *Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage progress notes",
	}

	var add noteFlags
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Write a progress note locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runNoteAdd(cmd.Context(), add)
		},
	}
	bindNoteFlags(addCmd, &add)

	var edit noteFlags
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a progress note locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runNoteEdit(cmd.Context(), args[0], edit, cmd.Flags().Changed)
		},
	}
	bindNoteFlags(editCmd, &edit)
	editCmd.Flags().StringVar(&edit.status, "status", "", "draft|signed")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List local progress notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runNoteList(cmd.Context())
		},
	}

	cmd.AddCommand(addCmd, editCmd, listCmd)
	return cmd
}

func bindNoteFlags(cmd *cobra.Command, f *noteFlags) {
	cmd.Flags().StringVar(&f.clientID, "client", "", "client id")
	cmd.Flags().StringVar(&f.sessionID, "session", "", "session id")
	cmd.Flags().StringVar(&f.content, "content", "", "note text")
	cmd.Flags().StringVar(&f.riskLevel, "risk", "", "none|low|moderate|high|critical")
	cmd.Flags().StringSliceVar(&f.tags, "tags", nil, "comma separated tags")
}

func (c *Cli) runNoteAdd(ctx context.Context, f noteFlags) error {
	note := &models.ProgressNote{
		ClientID:  f.clientID,
		SessionID: optional(f.sessionID),
		Content:   f.content,
		RiskLevel: api.RiskLevel(f.riskLevel),
		Tags:      f.tags,
	}
	if err := c.dataService.AddProgressNote(ctx, note); err != nil {
		return err
	}
	c.io.Printf("✓ Progress note %s added.\n", note.ID)
	return nil
}

func (c *Cli) runNoteEdit(ctx context.Context, id string, f noteFlags, changed func(string) bool) error {
	note, err := c.dataService.GetProgressNote(ctx, id)
	if err != nil {
		return err
	}
	if changed("client") {
		note.ClientID = f.clientID
	}
	if changed("session") {
		note.SessionID = optional(f.sessionID)
	}
	if changed("content") {
		note.Content = f.content
	}
	if changed("risk") {
		note.RiskLevel = api.RiskLevel(f.riskLevel)
	}
	if changed("tags") {
		note.Tags = f.tags
	}
	if changed("status") {
		note.Status = api.NoteStatus(f.status)
	}
	if err := c.dataService.EditProgressNote(ctx, note); err != nil {
		return err
	}
	c.io.Printf("✓ Progress note %s updated.\n", note.ID)
	return nil
}

func (c *Cli) runNoteList(ctx context.Context) error {
	notes, err := c.dataService.ListProgressNotes(ctx)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		c.io.Println("No progress notes found. Use 'clinicsync note add' to write one.")
		return nil
	}
	return c.renderTable(noteListTmpl, notes)
}

// optional возвращает nil для пустой строки
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return &t, nil
}
