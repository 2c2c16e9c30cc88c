package parser

import (
	"io/ioutil"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"git.lost.host/meutraa/eotk/internal/game"
)

type DefaultParser struct{}

// ParseLevelList reads a sequential list of "<filename> <display name>"
// pairs, one per line. A filename token without a display name after it
// means the file is malformed, not merely finished.
func (p *DefaultParser) ParseLevelList(file string) ([]Entry, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, errors.Wrap(err, "unable to read level list")
	}

	str := strings.ReplaceAll(string(data), "\r", "")
	entries := []Entry{}
	for i, line := range strings.Split(str, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
			return nil, errors.Errorf("level list line %v: %q has no display name", i+1, parts[0])
		}
		entries = append(entries, Entry{
			FileName:    parts[0],
			DisplayName: strings.TrimSpace(parts[1]),
		})
	}
	return entries, nil
}

// Level file directives:
//
//	song   <display name>
//	audio  <audio file name>
//	length <song length seconds>
//	lane   <lane scroll duration seconds>
//	note   <lane> <start seconds> <end seconds>
func (p *DefaultParser) ParseLevel(file string) (*game.Level, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, errors.Wrap(err, "unable to read level file")
	}

	level := &game.Level{}
	str := strings.ReplaceAll(string(data), "\r", "")
	for i, line := range strings.Split(str, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) < 2 {
			return nil, errors.Errorf("level line %v: %q has no value", i+1, line)
		}
		key, value := parts[0], strings.TrimSpace(parts[1])
		switch key {
		case "song":
			level.SongName = value
		case "audio":
			level.AudioFileName = value
		case "length":
			level.LengthSeconds, err = strconv.ParseFloat(value, 64)
		case "lane":
			level.LaneLengthSeconds, err = strconv.ParseFloat(value, 64)
		case "note":
			var note *game.Note
			note, err = parseNote(value)
			if nil == err {
				level.Notes = append(level.Notes, note)
			}
		default:
			return nil, errors.Errorf("level line %v: unknown directive %q", i+1, key)
		}
		if nil != err {
			return nil, errors.Wrapf(err, "level line %v", i+1)
		}
	}

	if level.AudioFileName == "" || level.LengthSeconds <= 0 || level.LaneLengthSeconds <= 0 {
		return nil, errors.Errorf("level %v is missing audio, length or lane metadata", file)
	}

	// Judging pops lane queues in arrival order, so the source order of
	// the note list must not matter.
	sort.SliceStable(level.Notes, func(i, j int) bool {
		return level.Notes[i].StartSeconds < level.Notes[j].StartSeconds
	})
	return level, nil
}

func parseNote(value string) (*game.Note, error) {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return nil, errors.Errorf("note %q needs lane, start and end", value)
	}
	lane, err := strconv.Atoi(fields[0])
	if nil != err {
		return nil, err
	}
	if lane < 0 || lane >= game.LaneCount {
		return nil, errors.Errorf("note lane %v out of range", lane)
	}
	start, err := strconv.ParseFloat(fields[1], 64)
	if nil != err {
		return nil, err
	}
	end, err := strconv.ParseFloat(fields[2], 64)
	if nil != err {
		return nil, err
	}
	if end < start {
		return nil, errors.Errorf("note %q ends before it starts", value)
	}
	return &game.Note{Lane: lane, StartSeconds: start, EndSeconds: end}, nil
}
