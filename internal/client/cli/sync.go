package cli

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/clinicsync/internal/client/storage"
	"github.com/iudanet/clinicsync/internal/client/sync"
)

// outcomeView добавляет ошибки цикла в yaml вывод
type outcomeView struct {
	Errors       []storage.SyncErrorRecord `yaml:"errors,omitempty"`
	sync.Outcome `yaml:",inline"`
}

const (
	outputText = "text"
	outputYAML = "yaml"
)

func (c *Cli) runSync(ctx context.Context, quick bool, output string) error {
	if err := checkOutput(output); err != nil {
		return err
	}
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	run := c.syncer.RunFullSync
	if quick {
		run = c.syncer.RunQuickSync
	}

	outcome, err := run(ctx, sync.TriggerManual)
	if err != nil {
		if errors.Is(err, sync.ErrNetworkUnavailable) {
			return fmt.Errorf("server is unreachable, local changes are kept: %w", err)
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if output == outputYAML {
		return c.writeYAML(outcomeView{Outcome: *outcome, Errors: outcome.ErrorRecords()})
	}

	c.io.Println("=== Synchronization ===")
	if err := outcomeTmpl.Execute(c.io, outcome); err != nil {
		return fmt.Errorf("failed to render outcome: %w", err)
	}
	if len(outcome.Errors) > 0 {
		c.io.Printf("⚠️  %d record(s) failed, they will be retried on the next sync.\n", len(outcome.Errors))
	}
	return nil
}

func (c *Cli) runWatch(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}
	c.io.Printf("Syncing every %s, press Ctrl+C to stop.\n", c.watchInterval)
	return sync.NewScheduler(c.syncer, c.watchInterval, c.logger).Run(ctx)
}

func (c *Cli) writeYAML(v any) error {
	enc := yaml.NewEncoder(c.io)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func checkOutput(output string) error {
	switch output {
	case outputText, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q, use text or yaml", output)
	}
}
