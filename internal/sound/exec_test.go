package sound

import (
	"context"
	"os/exec"
	"testing"
)

func TestExecPlayerPlay(t *testing.T) {
	shell, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not installed")
	}

	player := NewExecPlayer(nil, &PlayerConfig{
		Name: "sh",
		Path: shell,
		Args: []string{"-c", "cat > /dev/null"},
	})
	if err := player.Play(context.Background()); err != nil {
		t.Fatalf("Play: %v", err)
	}
}

func TestExecPlayerMissingBinary(t *testing.T) {
	player := NewExecPlayer(nil, &PlayerConfig{
		Name: "nosuchplayer",
		Path: "/nonexistent/nosuchplayer",
	})
	if err := player.Play(context.Background()); err == nil {
		t.Fatal("Play() = nil, want start error")
	}
}
