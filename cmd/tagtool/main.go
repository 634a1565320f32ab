// tagtool prints or edits the tags of audio files from the command
// line. It is a thin collaborator over the taglib package: everything
// it does goes through the public File/Tag contract.
//
// Read mode (no edit flags): dump the tag and audio properties of each
// file argument.
//
// Edit mode (any of --title, --artist, --album, --comment, --genre,
// --year, --track): apply the given fields to each file and save.
//
// Settings can also come from a tagtool.yaml config file or TAGTOOL_*
// environment variables (log-level, format); flags win.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/simonhull/taglib"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type edits struct {
	title, artist, album, comment, genre string
	year, track                          uint
	set                                  map[string]bool // which flags were given
}

func run() error {
	var e edits
	var formatName string
	var logLevel string

	flags := pflag.NewFlagSet("tagtool", pflag.ContinueOnError)
	flags.StringVar(&e.title, "title", "", "set the title field")
	flags.StringVar(&e.artist, "artist", "", "set the artist field")
	flags.StringVar(&e.album, "album", "", "set the album field")
	flags.StringVar(&e.comment, "comment", "", "set the comment field")
	flags.StringVar(&e.genre, "genre", "", "set the genre field")
	flags.UintVar(&e.year, "year", 0, "set the year field (0 clears it)")
	flags.UintVar(&e.track, "track", 0, "set the track number (0 clears it)")
	flags.StringVar(&formatName, "format", "", "container format hint (mpeg, flac, mp4, ...)")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tagtool [flags] file...\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	paths := flags.Args()
	if len(paths) == 0 {
		flags.Usage()
		return fmt.Errorf("no files given")
	}

	cfg, err := loadConfig(flags, formatName, logLevel)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.level}))
	slog.SetDefault(logger)

	e.set = make(map[string]bool)
	for _, name := range []string{"title", "artist", "album", "comment", "genre", "year", "track"} {
		if flags.Changed(name) {
			e.set[name] = true
		}
	}

	var opts []taglib.Option
	if cfg.format != taglib.FormatAuto {
		opts = append(opts, taglib.WithFormat(cfg.format))
	}

	if len(e.set) == 0 {
		return dump(context.Background(), paths, opts)
	}
	return apply(paths, e, opts)
}

type config struct {
	level  slog.Level
	format taglib.Format
}

// loadConfig layers flag values over TAGTOOL_* environment variables
// over an optional tagtool.yaml in the working directory.
func loadConfig(flags *pflag.FlagSet, formatName, logLevel string) (config, error) {
	v := viper.New()
	v.SetDefault("log-level", "info")
	v.SetDefault("format", "")

	v.SetConfigName("tagtool")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("TAGTOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags.Changed("log-level") {
		v.Set("log-level", logLevel)
	}
	if flags.Changed("format") {
		v.Set("format", formatName)
	}

	var cfg config
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		cfg.level = slog.LevelDebug
	case "", "info":
		cfg.level = slog.LevelInfo
	case "warn":
		cfg.level = slog.LevelWarn
	case "error":
		cfg.level = slog.LevelError
	default:
		return config{}, fmt.Errorf("unknown log level %q", v.GetString("log-level"))
	}

	format, err := parseFormat(v.GetString("format"))
	if err != nil {
		return config{}, err
	}
	cfg.format = format
	return cfg, nil
}

func parseFormat(name string) (taglib.Format, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return taglib.FormatAuto, nil
	case "mpeg", "mp3":
		return taglib.FormatMPEG, nil
	case "vorbis", "ogg":
		return taglib.FormatOggVorbis, nil
	case "flac":
		return taglib.FormatFLAC, nil
	case "mpc":
		return taglib.FormatMPC, nil
	case "oggflac":
		return taglib.FormatOggFLAC, nil
	case "wavpack":
		return taglib.FormatWavPack, nil
	case "speex":
		return taglib.FormatSpeex, nil
	case "trueaudio":
		return taglib.FormatTrueAudio, nil
	case "mp4", "m4a", "m4b":
		return taglib.FormatMP4, nil
	case "asf", "wma":
		return taglib.FormatASF, nil
	default:
		return taglib.FormatAuto, fmt.Errorf("unknown format %q", name)
	}
}

// dump opens all files concurrently and prints their tags in argument
// order.
func dump(ctx context.Context, paths []string, opts []taglib.Option) error {
	// OpenMany has no per-file options; open sequentially when a
	// format hint is in play.
	var files []*taglib.File
	var err error
	if len(opts) == 0 {
		files, err = taglib.OpenMany(ctx, paths...)
		if err != nil {
			return err
		}
	} else {
		for _, path := range paths {
			file, err := taglib.Open(path, opts...)
			if err != nil {
				for _, f := range files {
					f.Close()
				}
				return err
			}
			files = append(files, file)
		}
	}
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	for _, file := range files {
		printFile(file)
	}
	return nil
}

func printFile(file *taglib.File) {
	fmt.Printf("%s\n", file.Path)

	tag := file.Tag()
	fields := []struct {
		name string
		read func() (string, error)
	}{
		{"title", tag.Title},
		{"artist", tag.Artist},
		{"album", tag.Album},
		{"comment", tag.Comment},
		{"genre", tag.Genre},
	}
	for _, f := range fields {
		value, err := f.read()
		if err != nil {
			slog.Warn("unreadable field", "file", file.Path, "field", f.name, "err", err)
			continue
		}
		if value != "" {
			fmt.Printf("  %-8s %s\n", f.name+":", value)
		}
	}

	if year, ok := tag.Year(); ok {
		fmt.Printf("  %-8s %d\n", "year:", year)
	}
	if track, ok := tag.Track(); ok {
		fmt.Printf("  %-8s %d\n", "track:", track)
	}
	if bpm, ok := tag.BPM(); ok {
		fmt.Printf("  %-8s %d\n", "bpm:", bpm)
	}

	props := file.AudioProperties()
	if props.Length() > 0 {
		fmt.Printf("  %-8s %s, %d kb/s, %d Hz, %d ch\n", "audio:",
			props.Length(), props.Bitrate(), props.SampleRate(), props.Channels())
	}
}

// apply writes the given fields to each file and saves it.
func apply(paths []string, e edits, opts []taglib.Option) error {
	for _, path := range paths {
		if err := applyOne(path, e, opts); err != nil {
			return err
		}
		slog.Info("saved", "file", path)
	}
	return nil
}

func applyOne(path string, e edits, opts []taglib.Option) error {
	file, err := taglib.Open(path, opts...)
	if err != nil {
		return err
	}
	defer file.Close()

	tag := file.Tag()
	stringEdits := []struct {
		name  string
		value string
		set   func(string) error
	}{
		{"title", e.title, tag.SetTitle},
		{"artist", e.artist, tag.SetArtist},
		{"album", e.album, tag.SetAlbum},
		{"comment", e.comment, tag.SetComment},
		{"genre", e.genre, tag.SetGenre},
	}
	for _, edit := range stringEdits {
		if !e.set[edit.name] {
			continue
		}
		if err := edit.set(edit.value); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if e.set["year"] {
		tag.SetYear(e.year)
	}
	if e.set["track"] {
		tag.SetTrack(e.track)
	}

	if err := file.Save(); err != nil {
		return err
	}
	return nil
}
