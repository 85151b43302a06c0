package sound

import (
	"os/exec"
	"strconv"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
)

// PlayerConfig describes one external player able to consume the cue PCM on
// stdin.
type PlayerConfig struct {
	Name string
	Path string
	Args []string
}

// DetectPlayer searches PATH for an external audio player, lighter pipeline
// tools first: pacat, pw-cat, aplay, play (sox), ffplay. Returns
// domain.ErrNoAudioBackend when none is installed.
func DetectPlayer() (*PlayerConfig, error) {
	rate := strconv.Itoa(SampleRate)
	channels := strconv.Itoa(ChannelCount)

	candidates := []PlayerConfig{
		{Name: "pacat", Args: []string{
			"--raw",
			"--format=s16le",
			"--rate=" + rate,
			"--channels=" + channels,
			"--playback",
		}},
		{Name: "pw-cat", Args: []string{
			"--playback",
			"--format=s16",
			"--rate=" + rate,
			"--channels=" + channels,
			"-",
		}},
		{Name: "aplay", Args: []string{
			"-t", "raw",
			"-f", "S16_LE",
			"-r", rate,
			"-c", channels,
			"-q",
		}},
		{Name: "play", Args: []string{
			"-t", "raw",
			"-e", "signed",
			"-b", "16",
			"-c", channels,
			"-r", rate,
			"-",
			"-d",
			"-q",
		}},
		{Name: "ffplay", Args: []string{
			"-nodisp",
			"-autoexit",
			"-f", "s16le",
			"-ac", channels,
			"-ar", rate,
			"-loglevel", "quiet",
			"-i", "pipe:0",
		}},
	}

	for _, c := range candidates {
		if path, err := exec.LookPath(c.Name); err == nil {
			c.Path = path
			return &c, nil
		}
	}
	return nil, domain.ErrNoAudioBackend
}
