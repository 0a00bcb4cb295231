package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

type config struct {
	inputDir string
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "advent2016.ini")
}

// loadConfig reads the INI config at name. A missing file is only an error
// if the user asked for it explicitly.
func loadConfig(name string, explicit bool) (*config, error) {
	if name == "" {
		return &config{}, nil
	}
	f, err := ini.LoadFile(name)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &config{}, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", name, err)
	}
	dir, _ := f.Get("inputs", "dir")
	if strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[2:])
		}
	}
	return &config{inputDir: dir}, nil
}

type inputSource struct {
	file  string // -input; overrides dir
	dir   string // holds N.txt per day
	stdin io.Reader
}

func (in *inputSource) read(day int) (string, error) {
	switch {
	case in.file != "":
		b, err := os.ReadFile(in.file)
		return string(b), err
	case in.dir != "":
		b, err := os.ReadFile(filepath.Join(in.dir, strconv.Itoa(day)+".txt"))
		return string(b), err
	default:
		b, err := io.ReadAll(in.stdin)
		return string(b), err
	}
}
