package commit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// ErrNoNames indicates no annotated tag is reachable from HEAD.
var ErrNoNames = errors.New("no names found, cannot describe anything")

// GitResolver describes HEAD in-process. Like `git describe` without flags,
// only annotated tags are considered. The output is the tag name when HEAD
// is tagged, otherwise "<tag>-<distance>-g<abbrev>".
type GitResolver struct {
	// Dir is any directory inside the repository.
	Dir string
	// Abbrev is the abbreviated hash length. Defaults to 7.
	Abbrev int
}

// NewGitResolver creates a [GitResolver] for dir.
func NewGitResolver(dir string) *GitResolver {
	return &GitResolver{Dir: dir, Abbrev: 7}
}

// Resolve implements [Resolver].
func (r *GitResolver) Resolve(ctx context.Context) Result {
	desc, err := r.describe(ctx)
	if err != nil {
		slog.Debug("describe failed", "dir", r.Dir, "err", err)

		return Failed(err)
	}

	return Found(desc)
}

func (r *GitResolver) describe(ctx context.Context) (string, error) {
	repo, err := git.PlainOpenWithOptions(r.Dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", fmt.Errorf("open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}

	tags, err := annotatedTags(repo)
	if err != nil {
		return "", err
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return "", fmt.Errorf("walk history: %w", err)
	}
	defer iter.Close()

	var (
		name     string
		distance int
	)

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if tag, ok := tags[c.Hash]; ok {
			name = tag

			return storer.ErrStop
		}

		distance++

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("walk history: %w", err)
	}

	if name == "" {
		return "", ErrNoNames
	}

	if distance == 0 {
		return name, nil
	}

	abbrev := r.Abbrev
	if abbrev <= 0 {
		abbrev = 7
	}

	hash := head.Hash().String()

	return fmt.Sprintf("%s-%d-g%s", name, distance, hash[:min(abbrev, len(hash))]), nil
}

// annotatedTags maps tagged commit hashes to tag names.
func annotatedTags(repo *git.Repository) (map[plumbing.Hash]string, error) {
	refs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	tags := map[plumbing.Hash]string{}

	err = refs.ForEach(func(ref *plumbing.Reference) error {
		tag, err := repo.TagObject(ref.Hash())
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil // Lightweight tag.
		}

		if err != nil {
			return fmt.Errorf("read tag %s: %w", ref.Name().Short(), err)
		}

		c, err := tag.Commit()
		if err != nil {
			return nil //nolint:nilerr // Tags pointing at non-commit objects are skipped.
		}

		if prev, ok := tags[c.Hash]; !ok || tag.Name < prev {
			tags[c.Hash] = tag.Name
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tags, nil
}
