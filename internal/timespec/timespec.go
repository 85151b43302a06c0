// Package timespec resolves duration tokens and target-time specs into the
// instant a countdown ends.
package timespec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
	"github.com/LucaBoschetto/countdown.sh/internal/logger"
)

// Resolver evaluates raw duration/until strings against a reference clock
// reading. Time-of-day specs resolve in the resolver's location.
type Resolver struct {
	log *logger.Logger
	loc *time.Location
}

// NewResolver creates a resolver. A nil loc means time.Local.
func NewResolver(log *logger.Logger, loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Resolver{log: log, loc: loc}
}

// Resolve turns the raw inputs into a Target. An until spec wins over a
// duration token; the discarded token is carried in Target.IgnoredDuration
// so the caller can mention it without failing the run.
func (r *Resolver) Resolve(durToken, untilSpec string, now time.Time) (domain.Target, error) {
	durToken = strings.TrimSpace(durToken)
	untilSpec = strings.TrimSpace(untilSpec)

	if untilSpec != "" {
		end, rolled, err := r.resolveUntil(untilSpec, now)
		if err != nil {
			return domain.Target{}, err
		}
		t := domain.Target{
			// Round(0) strips the monotonic reading; the end instant is
			// pure wall clock.
			End:              end.Round(0),
			RolledToTomorrow: rolled,
			IgnoredDuration:  durToken,
		}
		r.log.Debug("resolved until %q to %s (rolled=%v)", untilSpec, t.End, rolled)
		return t, nil
	}

	secs, err := ParseDuration(durToken)
	if err != nil {
		return domain.Target{}, err
	}
	end := now.Add(time.Duration(secs) * time.Second).Round(0)
	r.log.Debug("resolved duration %q to %ds, ends %s", durToken, secs, end)
	return domain.Target{End: end}, nil
}

// durationRule pairs a full-match pattern with its evaluator, mirroring the
// until/date layout list below: first match wins.
type durationRule struct {
	regex *regexp.Regexp
	parse func(m []string) (int64, error)
}

var durationRules = []durationRule{
	{regexp.MustCompile(`^(\d+):(\d{1,2}):(\d{1,2})$`), parseHMS},
	{regexp.MustCompile(`^(\d+):(\d{1,2})$`), parseMS},
	{regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`), parseISO},
	{regexp.MustCompile(`(?i)^(?:\d+[hms]){1,3}$`), parseUnits},
	{regexp.MustCompile(`^\d+$`), parseSeconds},
}

// ParseDuration converts a duration token into total seconds. Accepted
// grammars: plain seconds ("90"), MM:SS ("1:30"), HH:MM:SS ("0:1:30"),
// unit-suffixed combinations in any order and case ("2h45m", "45M2H"), and
// ISO-8601 time durations ("PT2H45M").
func ParseDuration(token string) (int64, error) {
	trimmed := strings.TrimSpace(token)
	for _, rule := range durationRules {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		secs, err := rule.parse(m)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", domain.ErrParse, token, err)
		}
		return secs, nil
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrParse, token)
}

func parseHMS(m []string) (int64, error) {
	h, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, err
	}
	mi, _ := strconv.ParseInt(m[2], 10, 64)
	s, _ := strconv.ParseInt(m[3], 10, 64)
	return h*3600 + mi*60 + s, nil
}

func parseMS(m []string) (int64, error) {
	mi, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, err
	}
	s, _ := strconv.ParseInt(m[2], 10, 64)
	return mi*60 + s, nil
}

func parseISO(m []string) (int64, error) {
	if m[1] == "" && m[2] == "" && m[3] == "" {
		return 0, fmt.Errorf("empty ISO duration")
	}
	var total int64
	for i, mult := range []int64{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		v, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return 0, err
		}
		total += v * mult
	}
	return total, nil
}

var unitPart = regexp.MustCompile(`(?i)(\d+)([hms])`)

func parseUnits(m []string) (int64, error) {
	var total int64
	seen := map[string]bool{}
	for _, part := range unitPart.FindAllStringSubmatch(m[0], -1) {
		unit := strings.ToLower(part[2])
		if seen[unit] {
			return 0, fmt.Errorf("unit %q given twice", unit)
		}
		seen[unit] = true
		v, err := strconv.ParseInt(part[1], 10, 64)
		if err != nil {
			return 0, err
		}
		switch unit {
		case "h":
			total += v * 3600
		case "m":
			total += v * 60
		case "s":
			total += v
		}
	}
	return total, nil
}

func parseSeconds(m []string) (int64, error) {
	return strconv.ParseInt(m[0], 10, 64)
}

// clockSpec matches a bare time of day: HH:MM with optional :SS.
var clockSpec = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// dateLayouts are the accepted full date-time spellings, tried in order.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// resolveUntil maps an until spec onto a concrete instant. A time of day
// resolves against today's date and rolls to tomorrow when it is not
// strictly after now; full date-times are taken as given, even in the past.
func (r *Resolver) resolveUntil(spec string, now time.Time) (time.Time, bool, error) {
	now = now.In(r.loc)

	if m := clockSpec.FindStringSubmatch(spec); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		ss := 0
		if m[3] != "" {
			ss, _ = strconv.Atoi(m[3])
		}
		if hh > 23 || mm > 59 || ss > 59 {
			return time.Time{}, false, fmt.Errorf("%w: %q: field out of range", domain.ErrParse, spec)
		}
		end := time.Date(now.Year(), now.Month(), now.Day(), hh, mm, ss, 0, r.loc)
		if end.After(now) {
			return end, false, nil
		}
		// Same wall-clock time tomorrow. time.Date normalizes the day
		// carry so this stays correct across month ends and DST shifts.
		end = time.Date(now.Year(), now.Month(), now.Day()+1, hh, mm, ss, 0, r.loc)
		return end, true, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, spec, r.loc); err == nil {
			return t, false, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%w: %q", domain.ErrParse, spec)
}
