package audio

import (
	"os"
	"path"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

const speakerRate = beep.SampleRate(44100)

type loadedFile struct {
	buffer *beep.Buffer
	format beep.Format
}

// DefaultPlayer decodes files fully into memory on load and mixes
// playback through the beep speaker. Mixing runs on the speaker's own
// goroutine; nothing here blocks the game loop.
type DefaultPlayer struct {
	files map[string]*loadedFile
}

func NewPlayer() *DefaultPlayer {
	return &DefaultPlayer{files: map[string]*loadedFile{}}
}

func (p *DefaultPlayer) Init() error {
	err := speaker.Init(speakerRate, speakerRate.N(time.Second/60))
	return errors.Wrap(err, "unable to init speaker")
}

func (p *DefaultPlayer) Deinit() {
	speaker.Clear()
}

// LoadWav reads and decodes a sound asset. Despite the name the decoder
// is picked by extension, the same set the chart songs may use.
func (p *DefaultPlayer) LoadWav(file string) error {
	if _, ok := p.files[file]; ok {
		return nil
	}

	f, err := os.Open(file)
	if nil != err {
		return errors.Wrap(err, "unable to open audio file")
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch path.Ext(file) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		streamer, format, err = wav.Decode(f)
	}
	if nil != err {
		f.Close()
		return errors.Wrapf(err, "unable to decode %v", file)
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	streamer.Close()

	p.files[file] = &loadedFile{buffer: buffer, format: format}
	return nil
}

func (p *DefaultPlayer) Play(file string) error {
	loaded, ok := p.files[file]
	if !ok {
		return errors.Errorf("audio file %v is not loaded", file)
	}

	var streamer beep.Streamer = loaded.buffer.Streamer(0, loaded.buffer.Len())
	if loaded.format.SampleRate != speakerRate {
		streamer = beep.Resample(4, loaded.format.SampleRate, speakerRate, streamer)
	}
	speaker.Play(streamer)
	return nil
}

func (p *DefaultPlayer) UnloadFile(file string) error {
	if _, ok := p.files[file]; !ok {
		return errors.Errorf("audio file %v is not loaded", file)
	}
	delete(p.files, file)
	return nil
}

// UpdateSourceStates is part of the Player contract; the speaker mixes
// and drops finished streamers itself, so there is nothing to poll.
func (p *DefaultPlayer) UpdateSourceStates() {}
