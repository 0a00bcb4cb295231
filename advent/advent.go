package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
)

var verbose bool

func main() {
	log.SetFlags(0)
	var (
		configFile  = flag.String("config", defaultConfigFile(), "INI file naming the puzzle input directory")
		inputFile   = flag.String("input", "", "read the puzzle input from this file")
		interactive = flag.Bool("i", false, "interactive mode: read solution names from a prompt")
		profile     = flag.String("fgprof", "", "write a wall-clock profile to this file")
	)
	flag.BoolVar(&verbose, "v", false, "log timing and search statistics")
	flag.BoolVar(&tunedElevator, "tuned", false, "use the faster elevator heuristic for day 11 (answer may not be minimal)")
	flag.Usage = usage
	flag.Parse()

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	cfg, err := loadConfig(*configFile, explicit)
	if err != nil {
		log.Fatal(err)
	}
	in := &inputSource{file: *inputFile, dir: cfg.inputDir, stdin: os.Stdin}

	stop := startProfile(*profile)
	if *interactive {
		err = repl(in)
	} else {
		if flag.NArg() != 1 {
			usage()
			os.Exit(1)
		}
		err = runSolution(flag.Arg(0), in)
	}
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

type solution func(input string) (any, error)

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func runSolution(name string, in *inputSource) error {
	fn, ok := solutions[name]
	if !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	day, _ := splitName(name)
	input, err := in.read(day)
	if err != nil {
		return err
	}

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()
	answer, err := fn(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)
	fmt.Println(answer)
	vlogf("%s: %s, %s allocated", name, elapsed.Round(time.Microsecond), humanize.Bytes(after.TotalAlloc-before.TotalAlloc))
	return nil
}

func repl(in *inputSource) error {
	if in.file == "" && in.dir == "" {
		return fmt.Errorf("interactive mode needs -input or an input directory in the config file")
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: filepath.Join(os.TempDir(), "advent2016_history"),
	})
	if err != nil {
		return err
	}
	defer l.Close()
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if name == "help" || name == "?" {
			usage()
			continue
		}
		if err := runSolution(name, in); err != nil {
			log.Println(err)
		}
	}
}

func startProfile(name string) (stop func()) {
	if name == "" {
		return func() {}
	}
	f, err := os.Create(name)
	if err != nil {
		log.Fatal(err)
	}
	stopProf := fgprof.Start(f, fgprof.FormatPprof)
	return func() {
		if err := stopProf(); err != nil {
			log.Println("error writing profile:", err)
		}
		if err := f.Close(); err != nil {
			log.Println("error writing profile:", err)
		}
	}
}

func vlogf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
