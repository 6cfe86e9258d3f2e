// Package gitlog reads commit messages from a git repository so they can
// be laid out for the terminal.
package gitlog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// Entry is one commit.
type Entry struct {
	Hash    string
	Author  string
	When    time.Time
	Subject string
	Body    string
}

// Short returns the abbreviated commit hash.
func (e Entry) Short() string {
	if len(e.Hash) > 7 {
		return e.Hash[:7]
	}
	return e.Hash
}

// Log reads history from a repository.
type Log struct {
	repo *git.Repository
}

// Open opens the repository containing dir, searching parent
// directories for the .git directory.
func Open(dir string) (*Log, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}
	return New(repo), nil
}

// New wraps an already-opened repository.
func New(repo *git.Repository) *Log {
	return &Log{repo: repo}
}

// Recent returns up to limit commits reachable from HEAD, newest first.
// A limit of zero or less returns every commit.
func (l *Log) Recent(limit int) ([]Entry, error) {
	head, err := l.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	iter, err := l.repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	defer iter.Close()

	var entries []Entry
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(entries) >= limit {
			return storer.ErrStop
		}
		entries = append(entries, entryFrom(c))
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("walk history: %w", err)
	}
	return entries, nil
}

func entryFrom(c *object.Commit) Entry {
	subject, body := Split(c.Message)
	return Entry{
		Hash:    c.Hash.String(),
		Author:  c.Author.Name,
		When:    c.Author.When,
		Subject: subject,
		Body:    body,
	}
}

// Split separates a commit message into its subject line and body.
func Split(msg string) (subject, body string) {
	msg = strings.TrimSpace(msg)
	subject, body, _ = strings.Cut(msg, "\n")
	return strings.TrimSpace(subject), strings.TrimSpace(body)
}
