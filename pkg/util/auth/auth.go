package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
)

// ErrNoToken means every token source came up empty.
var ErrNoToken = errors.New("no github token available")

const ghTimeout = 10 * time.Second

// Token returns a bearer token for the GitHub API. Sources, in order:
// the GITHUB_TOKEN environment variable, the gh CLI's stored
// credential, and finally an interactive prompt.
func Token() (string, error) {
	if token, ok := os.LookupEnv("GITHUB_TOKEN"); ok && token != "" {
		return token, nil
	}

	if token, err := ghAuthToken(); err == nil && token != "" {
		return token, nil
	}

	var token string

	prompt := &survey.Password{
		Message: "Please enter your github token",
	}
	survey.AskOne(prompt, &token)

	if token == "" {
		return "", ErrNoToken
	}

	return token, nil
}

func ghAuthToken() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), ghTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "gh", "auth", "token").Output()
	if err != nil {
		return "", fmt.Errorf("gh auth token: %w", err)
	}

	return strings.TrimSpace(string(out)), nil
}

// RepoOwner returns the owner login of the repository in the working
// directory, via gh. It errors when the directory is not a recognized
// repository; callers treat that as "no org filter", not a failure.
func RepoOwner(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ghTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "gh", "repo", "view", "--json", "owner").Output()
	if err != nil {
		return "", fmt.Errorf("gh repo view: %w", err)
	}

	owner, err := parseOwner(out)
	if err != nil {
		return "", fmt.Errorf("gh repo view: %w", err)
	}

	return owner, nil
}

// parseOwner pulls owner.login out of gh repo view --json owner output.
func parseOwner(out []byte) (string, error) {
	var view struct {
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
	}

	if err := json.Unmarshal(out, &view); err != nil {
		return "", err
	}

	if view.Owner.Login == "" {
		return "", errors.New("output has no owner.login")
	}

	return view.Owner.Login, nil
}
