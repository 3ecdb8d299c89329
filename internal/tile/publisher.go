package tile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Publisher delivers a rendered snapshot somewhere the user can see it.
type Publisher interface {
	Publish(ctx context.Context, snap Snapshot, imgs *Images) error
}

const (
	SquareFile = "square.png"
	WideFile   = "wide.png"
	BadgeFile  = "badge.json"
)

type FilePublisher struct {
	dir string
}

func NewFilePublisher(dir string) (*FilePublisher, error) {
	if dir == "" {
		return nil, fmt.Errorf("tile output dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create tile output dir: %w", err)
	}
	return &FilePublisher{dir: dir}, nil
}

func (p *FilePublisher) Dir() string { return p.dir }

func (p *FilePublisher) Publish(ctx context.Context, snap Snapshot, imgs *Images) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if imgs != nil {
		if err := p.write(SquareFile, imgs.Square); err != nil {
			return err
		}
		if err := p.write(WideFile, imgs.Wide); err != nil {
			return err
		}
	}
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return p.write(BadgeFile, raw)
}

// write replaces name atomically so readers never see a partial file.
func (p *FilePublisher) write(name string, data []byte) error {
	tmp, err := os.CreateTemp(p.dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(p.dir, name)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// MultiPublisher publishes to every target and joins their errors.
type MultiPublisher []Publisher

func (m MultiPublisher) Publish(ctx context.Context, snap Snapshot, imgs *Images) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, snap, imgs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
