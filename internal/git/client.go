package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Client is the interface for the version-control queries the manifest needs
type Client interface {
	Commit() (string, error)
	Branch() (string, error)
	Tag() (string, error)
}

// Info is the build section of the manifest. Tag is nil when the repository
// has no tag reachable from HEAD.
type Info struct {
	Commit string  `json:"commit"`
	Branch string  `json:"branch"`
	Tag    *string `json:"tag"`
}

// CommitHashLength is how much of the commit SHA the manifest keeps
const CommitHashLength = 8

// DefaultClient is the default git client implementation, shelling out to the
// git binary
type DefaultClient struct {
	Dir string
}

// NewClient creates a git client operating on the given repository directory
func NewClient(dir string) *DefaultClient {
	return &DefaultClient{Dir: dir}
}

// Commit returns the full SHA of HEAD
func (c *DefaultClient) Commit() (string, error) {
	return c.run("rev-parse", "HEAD")
}

// Branch returns the current branch name
func (c *DefaultClient) Branch() (string, error) {
	return c.run("rev-parse", "--abbrev-ref", "HEAD")
}

// Tag returns the most recent tag reachable from HEAD
func (c *DefaultClient) Tag() (string, error) {
	return c.run("describe", "--tags", "--abbrev=0")
}

func (c *DefaultClient) run(args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", c.Dir}, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %s", args[0], strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Query collects repository state for the manifest build section. Each query
// failure is swallowed independently: a missing git binary or a directory that
// is not a repository produces empty fields, never an error.
func Query(c Client) Info {
	var info Info

	if commit, err := c.Commit(); err == nil {
		if len(commit) > CommitHashLength {
			commit = commit[:CommitHashLength]
		}
		info.Commit = commit
	}

	if branch, err := c.Branch(); err == nil {
		info.Branch = branch
	}

	if tag, err := c.Tag(); err == nil && tag != "" {
		info.Tag = &tag
	}

	return info
}
