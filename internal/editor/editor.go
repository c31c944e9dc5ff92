package editor

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Wait opens the artifact in the configured editor (best effort) and
// blocks until the operator confirms with a keypress. While waiting, a
// filesystem watch on the artifact reports each save so the operator can
// see the tool noticed their edit. The editor failing to launch never
// blocks the workflow; the file can be edited by any other means.
func (p *implPauser) Wait(ctx context.Context, artifactPath string) error {
	stopWatch := p.watchSaves(ctx, artifactPath)
	defer stopWatch()

	fmt.Fprintf(p.prompt, "\nDetected texts saved to: %s\n", artifactPath)
	fmt.Fprintln(p.prompt, "Review and correct the text under each marker before audio generation.")

	if p.command != "" {
		p.logger.Info(ctx, "Opening editor: %s %s", p.command, artifactPath)
		if _, err := p.executor.Execute(ctx, p.command, artifactPath); err != nil {
			p.logger.Warn(ctx, "Could not open editor, edit the file manually: %v", err)
		}
	}

	fmt.Fprint(p.prompt, "\nPress Enter after you have finished editing and saved the file... ")

	lineCh := make(chan error, 1)
	go func() {
		_, err := bufio.NewReader(p.confirm).ReadString('\n')
		lineCh <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-lineCh:
		if err != nil {
			return fmt.Errorf("read confirmation: %w", err)
		}
		return nil
	}
}

// watchSaves starts a watcher on the artifact's directory and logs each
// save of the artifact. Purely informational; any failure degrades to no
// save notifications.
func (p *implPauser) watchSaves(ctx context.Context, artifactPath string) func() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		p.logger.Debug(ctx, "Save notifications unavailable: %v", err)
		return func() {}
	}

	if err := watcher.Add(filepath.Dir(artifactPath)); err != nil {
		p.logger.Debug(ctx, "Save notifications unavailable: %v", err)
		watcher.Close()
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filepath.Base(artifactPath) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					p.logger.Info(ctx, "Artifact saved: %s", event.Name)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return func() {
		watcher.Close()
		<-done
	}
}
