package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"mime"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	wordbrain "github.com/BcomedianC/WordBrain-Solver"
	"github.com/BcomedianC/WordBrain-Solver/internal"
	"github.com/BcomedianC/WordBrain-Solver/pkg/dictionary"
	"github.com/BcomedianC/WordBrain-Solver/pkg/vision"
)

const helpMessage = `
	wbcli open: open the grid for editing
	wbcli hint: displays valid words of given lengths
	wbcli solve: solves the entire puzzle
	wbcli languages: lets you choose the language
	wbcli help: displays this message
`

type options struct {
	gridPath     string
	pwlPath      string
	configPath   string
	dictDir      string
	language     string
	wordsPath    string
	excludedPath string
	lengths      string
	screenshot   string
}

func main() {
	var opts options
	flag.StringVar(&opts.gridPath, "grid", "grid.txt", "The file holding the letter grid")
	flag.StringVar(&opts.pwlPath, "pwl", "personal_word_list.txt", "The personal word list")
	flag.StringVar(&opts.configPath, "config", "config.txt", "The key:value config file")
	flag.StringVar(&opts.dictDir, "dict-dir", "dictionaries", "The directory of <lang>.txt word files")
	flag.StringVar(&opts.language, "lang", "", "The dictionary language, overrides the config file")
	flag.StringVar(&opts.wordsPath, "words", "", "A file of extra words to accept")
	flag.StringVar(&opts.excludedPath, "excluded", "", "A file of words never to accept")
	flag.StringVar(&opts.lengths, "lengths", "", "The word lengths, e.g. 3,4,2 (read from stdin if empty)")
	flag.StringVar(&opts.screenshot, "screenshot", "", "Read grid and lengths from a game screenshot with Gemini")

	timeout := flag.Duration("timeout", 0, "Give up solving after this long (0 for no limit)")
	logLevel := flag.String("log-level", "warning", "The log level (debug, info, warning, error)")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Println("Invalid log level:", err)
		os.Exit(1)
	}
	logrus.SetLevel(level)
	log := logrus.StandardLogger()

	action := flag.Arg(0)
	if action == "" {
		fmt.Println("No action provided: [open, hint, solve, languages, help]")
		os.Exit(1)
	}

	config, err := internal.ReadConfig(opts.configPath)
	if err != nil {
		fmt.Println("Error reading config:", err)
		os.Exit(1)
	}
	if opts.language == "" {
		opts.language = config["lang"]
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	con := newConsole(os.Stdin, os.Stdout)
	if err := run(ctx, action, opts, con, log); err != nil {
		fmt.Println("Error:", err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}

func run(ctx context.Context, action string, opts options, con *console, log logrus.FieldLogger) error {
	switch action {
	case "open":
		return openGrid(opts.gridPath)
	case "help":
		fmt.Fprint(con.out, helpMessage)
		return nil
	case "languages":
		return chooseLanguage(ctx, con, opts.dictDir, opts.configPath)
	case "hint", "solve":
	default:
		return fmt.Errorf("unrecognized argument: %s", action)
	}

	g, lengths, err := loadPuzzle(ctx, con, opts, log)
	if err != nil {
		return err
	}

	start := time.Now()
	dict, personal, err := dictionary.Open(ctx, dictionary.Config{
		Dir:           opts.dictDir,
		Language:      opts.language,
		PersonalPath:  opts.pwlPath,
		ExtraPath:     opts.wordsPath,
		ExcludedPath:  opts.excludedPath,
		MaxWordLength: g.NumLetters(),
	})
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"language": opts.language,
		"words":    dict.Len(),
		"personal": personal.Path(),
		"duration": time.Since(start),
	}).Info("dictionary loaded")
	logLengthCoverage(dict, lengths, log)

	if action == "hint" {
		h := &wordbrain.Hinter{
			Dictionary: dict,
			Personal:   personal,
			Prompter:   con,
			Lengths:    lengths,
			Log:        log,
		}
		return runHint(ctx, con, h, g)
	}
	return runSolve(ctx, con, wordbrain.NewSolver(dict, lengths, wordbrain.WithLogger(log)), g, log)
}

// logLengthCoverage reports how many words the dictionary knows for each required length,
// warning about lengths it knows nothing of.
func logLengthCoverage(dict *dictionary.WordList, lengths []int, log logrus.FieldLogger) {
	for i, n := range lengths {
		entry := log.WithFields(logrus.Fields{
			"position": i,
			"length":   n,
			"words":    dict.WordsOfLength(n),
		})
		if dict.WordsOfLength(n) == 0 {
			entry.Warn("no dictionary words of this length")
			continue
		}
		entry.Debug("dictionary words of this length")
	}
}

// loadPuzzle reads the grid from the grid file, or from a screenshot, and the word lengths
// from the -lengths flag, the screenshot or the console, in that order.
func loadPuzzle(ctx context.Context, con *console, opts options, log logrus.FieldLogger) (wordbrain.Grid, []int, error) {
	var (
		gridText string
		lengths  []int
	)
	if opts.screenshot != "" {
		puzzle, err := analyzeScreenshot(ctx, opts.screenshot)
		if err != nil {
			return wordbrain.Grid{}, nil, err
		}
		gridText, lengths = puzzle.GridText(), puzzle.Lengths
		log.WithField("lengths", lengths).Info("screenshot analysed")
	} else {
		data, err := os.ReadFile(opts.gridPath)
		if err != nil {
			return wordbrain.Grid{}, nil, err
		}
		gridText = string(data)
	}

	g, err := wordbrain.ParseGrid(gridText)
	if err != nil {
		return wordbrain.Grid{}, nil, err
	}
	fmt.Fprintln(con.out, g.Repr())
	fmt.Fprintln(con.out)

	switch {
	case opts.lengths != "":
		if lengths, err = internal.ParseLengths(opts.lengths); err != nil {
			return wordbrain.Grid{}, nil, err
		}
	case len(lengths) == 0:
		if lengths, err = internal.ScanLengths(con.in, g.NumLetters()); err != nil {
			return wordbrain.Grid{}, nil, fmt.Errorf("reading word lengths: %w", err)
		}
	}
	if sum := internal.Sum(lengths); sum != g.NumLetters() {
		log.WithFields(logrus.Fields{
			"lengths": lengths,
			"sum":     sum,
			"letters": g.NumLetters(),
		}).Warn("word lengths do not add up to the number of letters")
	}
	return g, lengths, nil
}

func analyzeScreenshot(ctx context.Context, path string) (*vision.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "image/png"
	}

	reader, err := vision.NewReader(ctx, vision.Config{
		ProjectID: os.Getenv("GCP_PROJECT_ID"),
		Region:    os.Getenv("GCP_REGION"),
		Model:     os.Getenv("GEMINI_MODEL"),
	})
	if err != nil {
		return nil, err
	}
	return reader.AnalyzeScreenshot(ctx, data, mimeType)
}

func runHint(ctx context.Context, con *console, h *wordbrain.Hinter, g wordbrain.Grid) error {
	sol, err := h.Run(ctx, g)
	if errors.Is(err, wordbrain.ErrNoCandidates) {
		fmt.Fprintln(con.out, err)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(con.out, sol)
	return nil
}

// runSolve shows one solution at a time until the player accepts one or none are left.
func runSolve(ctx context.Context, con *console, solver *wordbrain.Solver, g wordbrain.Grid, log logrus.FieldLogger) error {
	session := wordbrain.NewSession(solver, g)
	for sol := range session.Solutions(ctx) {
		log.WithFields(logrus.Fields{
			"frames":     session.Stats.Frames,
			"backtracks": session.Stats.Backtracks,
			"duration":   session.Stats.Duration,
		}).Debug("solution found")

		for _, w := range sol {
			fmt.Fprintln(con.out, w)
		}
		answer, err := con.ask(ctx, "Is that correct? ")
		if err != nil {
			return err
		}
		if answer == "y" {
			return nil
		}
	}

	if errors.Is(session.Err(), wordbrain.ErrUnsolvable) {
		fmt.Fprintln(con.out, "could not solve")
		return nil
	}
	return session.Err()
}

func chooseLanguage(ctx context.Context, con *console, dir, configPath string) error {
	langs, err := dictionary.Languages(dir)
	if err != nil {
		return err
	}
	if len(langs) == 0 {
		return fmt.Errorf("no languages in %s", dir)
	}

	for i, lang := range langs {
		fmt.Fprintf(con.out, "%d  %s\n", i, lang)
	}
	prompt := "Choose a language. Type the number of the language you want.\n"
	for {
		answer, err := con.ask(ctx, prompt)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			return fmt.Errorf("input needs to be a number: %q", answer)
		}
		if n >= 0 && n < len(langs) {
			if err := internal.WriteConfigParam(configPath, "lang", langs[n]); err != nil {
				return err
			}
			fmt.Fprintln(con.out, "Language set to", langs[n])
			return nil
		}
		prompt = fmt.Sprintf("Input needs to be between 0 and %d\n", len(langs)-1)
	}
}

// openGrid opens the grid file in $EDITOR, or with the platform's default opener.
func openGrid(path string) error {
	name, args := os.Getenv("EDITOR"), []string{path}
	if name == "" {
		switch runtime.GOOS {
		case "darwin":
			name = "open"
		case "windows":
			name, args = "cmd", []string{"/c", "start", "", path}
		default:
			name = "xdg-open"
		}
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd.Run()
}
