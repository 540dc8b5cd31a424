package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/example/kotoba/internal/config"
	"github.com/example/kotoba/internal/database"
	"github.com/example/kotoba/internal/excel"
	"github.com/example/kotoba/internal/jp"
	"github.com/example/kotoba/internal/logger"
	"github.com/example/kotoba/internal/progress"
	"github.com/example/kotoba/internal/quiz"
	"github.com/example/kotoba/internal/scheduler"
	"github.com/example/kotoba/internal/vocabulary"
	"github.com/example/kotoba/pkg/models"
	"go.uber.org/zap"
)

const usage = `kotoba - Japanese vocabulary trainer

Usage: kotoba <command> [options]

Commands:
  load      replace the vocabulary set from a workbook file
  validate  check a workbook and print the validation report
  analyze   print the duplicate analysis of a workbook
  days      list study days with progress
  study     show the words of a day
  search    find words by substring
  quiz      run a multiple-choice quiz
  review    list words due for review
  stats     print overall learning statistics
  complete  mark a day as completed
  export    write the vocabulary set as JSON
  sample    write a sample workbook
  reset     wipe all learning progress
  remind    run the review reminder loop until interrupted
`

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		stdlog.Fatalf("failed to create logger: %v", err)
	}
	defer log.Sync()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	app, err := newApp(cfg, log)
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}
	defer app.Close()

	if err := app.run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg    config.Config
	log    *zap.Logger
	db     *database.DB
	store  *progress.Store
	loader *vocabulary.Loader
	repo   *vocabulary.Repository
}

func newApp(cfg config.Config, log *zap.Logger) (*app, error) {
	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	store := progress.NewStore(log, database.NewStateRepository(db),
		progress.WithReviewLog(database.NewReviewLogRepository(db)))

	return &app{
		cfg:    cfg,
		log:    log,
		db:     db,
		store:  store,
		loader: vocabulary.NewLoader(log, excel.DefaultOptions()),
		repo:   vocabulary.New(nil),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn("failed to close database", zap.Error(err))
	}
}

func (a *app) run(cmd string, args []string) error {
	switch cmd {
	case "load":
		return a.cmdLoad(args)
	case "validate":
		return a.cmdValidate(args)
	case "analyze":
		return a.cmdAnalyze(args)
	case "days":
		return a.cmdDays(args)
	case "study":
		return a.cmdStudy(args)
	case "search":
		return a.cmdSearch(args)
	case "quiz":
		return a.cmdQuiz(args)
	case "review":
		return a.cmdReview(args)
	case "stats":
		return a.cmdStats(args)
	case "complete":
		return a.cmdComplete(args)
	case "export":
		return a.cmdExport(args)
	case "sample":
		return a.cmdSample(args)
	case "reset":
		return a.cmdReset(args)
	case "remind":
		return a.cmdRemind(args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// loadVocabulary fills the repository from the configured workbook.
func (a *app) loadVocabulary() error {
	set, _, err := a.loader.LoadFile(a.cfg.VocabularyFile)
	if err != nil {
		return fmt.Errorf("load %s: %w (run 'kotoba sample' and 'kotoba load' to get started)", a.cfg.VocabularyFile, err)
	}
	a.repo.Replace(set)
	return nil
}

func (a *app) cmdLoad(args []string) error {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	file := fs.String("file", a.cfg.VocabularyFile, "workbook to load")
	deriveReadings := fs.Bool("derive-readings", false, "fill missing readings of kanji-only rows from the morphological dictionary")
	fs.Parse(args)

	loader := a.loader
	if *deriveReadings {
		provider, err := jp.NewReadingProvider()
		if err != nil {
			return err
		}
		opts := excel.DefaultOptions()
		opts.Readings = provider
		loader = vocabulary.NewLoader(a.log, opts)
	}

	set, report, err := loader.UploadFile(*file)
	if err != nil {
		return err
	}
	a.repo.Replace(set)

	fmt.Printf("Loaded %d words across %d days (avg %d words/day)\n",
		report.Stats.TotalWords, report.Stats.TotalDays, report.Stats.AverageWordsPerDay)
	for _, msg := range report.Errors {
		fmt.Printf("  warning: %s\n", msg)
	}
	return nil
}

func (a *app) cmdValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	file := fs.String("file", a.cfg.VocabularyFile, "workbook to validate")
	fs.Parse(args)

	_, report, err := a.loader.LoadFile(*file)
	if err != nil {
		return err
	}

	if report.Valid {
		fmt.Println("OK")
	} else {
		for _, msg := range report.Errors {
			fmt.Println(msg)
		}
	}
	fmt.Printf("%d days, %d words, %d words/day on average\n",
		report.Stats.TotalDays, report.Stats.TotalWords, report.Stats.AverageWordsPerDay)
	return nil
}

func (a *app) cmdAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	file := fs.String("file", a.cfg.VocabularyFile, "workbook to analyze")
	fs.Parse(args)

	if err := excel.CheckExtension(*file); err != nil {
		return err
	}
	opts := excel.DefaultOptions()
	opts.RemoveDuplicates = false
	set, err := excel.ParseFile(*file, opts)
	if err != nil {
		return err
	}

	report := excel.AnalyzeDuplicates(set)
	fmt.Printf("%d words total, %d unique, %d duplicates\n",
		report.TotalWords, report.UniqueWords, report.Duplicates)
	for _, d := range report.Details {
		fmt.Printf("  %s appears on days %v\n", d.Key, d.Days)
	}
	return nil
}

func (a *app) cmdDays(args []string) error {
	if err := a.loadVocabulary(); err != nil {
		return err
	}

	current := a.store.CurrentDay()
	for _, n := range a.repo.DayNumbers() {
		day, _ := a.repo.Day(n)
		marker := " "
		if a.store.IsDayCompleted(n) {
			marker = "x"
		}
		pointer := "  "
		if n == current {
			pointer = "> "
		}
		fmt.Printf("%s[%s] Day %d: %s (%d words, %d%% known)\n",
			pointer, marker, n, day.Title, len(day.Words), a.store.DayProgress(day.Words))
	}
	return nil
}

func (a *app) cmdStudy(args []string) error {
	fs := flag.NewFlagSet("study", flag.ExitOnError)
	dayFlag := fs.Int("day", 0, "day to study (default: current day)")
	modeFlag := fs.String("mode", "", "display mode: reading, kanji or mixed")
	fs.Parse(args)

	if err := a.loadVocabulary(); err != nil {
		return err
	}

	if *modeFlag != "" {
		mode := models.DisplayMode(*modeFlag)
		switch mode {
		case models.DisplayReading, models.DisplayKanji, models.DisplayMixed:
			a.store.SetDisplayMode(mode)
		default:
			return fmt.Errorf("unknown display mode: %s", *modeFlag)
		}
	}

	n := *dayFlag
	if n == 0 {
		n = a.store.CurrentDay()
	}
	day, ok := a.repo.Day(n)
	if !ok {
		return fmt.Errorf("day %d not found", n)
	}
	a.store.SetCurrentDay(n)

	mode := a.store.DisplayMode()
	fmt.Printf("Day %d: %s\n", day.Number, day.Title)
	for _, w := range day.Words {
		if a.store.ShowGloss() {
			fmt.Printf("  %s — %s\n", w.Surface(mode), w.Meaning)
		} else {
			fmt.Printf("  %s\n", w.Surface(mode))
		}
	}
	return nil
}

func (a *app) cmdSearch(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: kotoba search <query>")
	}
	if err := a.loadVocabulary(); err != nil {
		return err
	}

	results := a.repo.Search(strings.Join(args, " "))
	if len(results) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, w := range results {
		fmt.Printf("  %s — %s\n", w.Surface(models.DisplayMixed), w.Meaning)
	}
	return nil
}

func (a *app) cmdQuiz(args []string) error {
	fs := flag.NewFlagSet("quiz", flag.ExitOnError)
	daysFlag := fs.String("days", "", "comma-separated day numbers (default: all)")
	count := fs.Int("count", a.cfg.QuizSize, "number of questions")
	filter := fs.String("filter", "all", "word filter: all, learned, unlearned or review")
	fs.Parse(args)

	if err := a.loadVocabulary(); err != nil {
		return err
	}

	days, err := parseDayList(*daysFlag)
	if err != nil {
		return err
	}

	gen := quiz.NewGenerator(a.repo, a.store)
	questions, err := gen.Generate(quiz.Config{
		Days:          days,
		QuestionCount: *count,
		Filter:        vocabulary.LearningFilter(*filter),
	})
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	var results []models.QuizResult

	for i, q := range questions {
		fmt.Printf("\n%d/%d %s\n", i+1, len(questions), q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		choice := readChoice(scanner, len(q.Options))
		result := gen.Submit(i, q, q.Options[choice])
		if result.Correct {
			fmt.Println("correct!")
		} else {
			fmt.Printf("wrong — the answer is %s\n", q.CorrectAnswer)
		}
		results = append(results, result)
	}

	summary := quiz.Summary(results)
	fmt.Printf("\nScore: %d/%d (%d%%)\n", summary.Correct, summary.Total, summary.Percentage)
	return nil
}

func (a *app) cmdReview(args []string) error {
	if err := a.loadVocabulary(); err != nil {
		return err
	}

	due := a.store.DueForReview()
	if len(due) == 0 {
		fmt.Println("nothing due for review")
		return nil
	}

	words := a.repo.WordsByIDs(due)
	fmt.Printf("%d words due for review:\n", len(due))
	for _, w := range words {
		fmt.Printf("  %s — %s\n", w.Surface(models.DisplayMixed), w.Meaning)
	}
	return nil
}

func (a *app) cmdStats(args []string) error {
	stats := a.store.OverallStats()
	fmt.Printf("Words studied:   %d\n", stats.TotalWords)
	fmt.Printf("Known:           %d\n", stats.KnownWords)
	fmt.Printf("Needing review:  %d\n", stats.ReviewWords)
	fmt.Printf("Completion rate: %d%%\n", stats.CompletionRate)
	fmt.Printf("Avg reviews:     %d\n", stats.AverageReviewCount)
	fmt.Printf("Completed days:  %v\n", a.store.CompletedDays())
	return nil
}

func (a *app) cmdComplete(args []string) error {
	fs := flag.NewFlagSet("complete", flag.ExitOnError)
	day := fs.Int("day", 0, "day to mark completed")
	fs.Parse(args)

	if *day <= 0 {
		return errors.New("usage: kotoba complete -day N")
	}
	a.store.MarkDayCompleted(*day)
	fmt.Printf("Day %d marked completed\n", *day)
	return nil
}

func (a *app) cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "vocabulary.json", "output file")
	fs.Parse(args)

	if err := a.loadVocabulary(); err != nil {
		return err
	}

	data, err := excel.ExportJSON(a.repo.Set())
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported to %s\n", *out)
	return nil
}

func (a *app) cmdSample(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	out := fs.String("out", "sample_vocabulary.xlsx", "output file")
	fs.Parse(args)

	if err := excel.WriteSample(*out); err != nil {
		return err
	}
	fmt.Printf("Sample workbook written to %s\n", *out)
	return nil
}

func (a *app) cmdReset(args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	force := fs.Bool("force", false, "skip confirmation")
	fs.Parse(args)

	if !*force {
		fmt.Print("This wipes all learning progress. Type 'yes' to continue: ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || scanner.Text() != "yes" {
			fmt.Println("aborted")
			return nil
		}
	}
	a.store.Reset()
	fmt.Println("Progress reset")
	return nil
}

func (a *app) cmdRemind(args []string) error {
	if err := a.loadVocabulary(); err != nil {
		return err
	}

	sched := scheduler.New(a.log, a.store, &terminalNotifier{repo: a.repo}, scheduler.Config{
		Interval:  a.cfg.ReminderInterval,
		StartHour: a.cfg.ReminderStart,
		EndHour:   a.cfg.ReminderEnd,
	})
	sched.Start()
	defer sched.Stop()

	// Fire once up front so the learner sees the current backlog.
	if err := sched.RunManualCheck(); err != nil {
		a.log.Warn("manual reminder check failed", zap.Error(err))
	}

	fmt.Println("Reminder loop running. Press Ctrl+C to stop.")
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	a.log.Info("shutting down", zap.String("signal", sig.String()))
	return nil
}

// terminalNotifier prints reminders to stdout.
type terminalNotifier struct {
	repo *vocabulary.Repository
}

func (n *terminalNotifier) RemindDueWords(wordIDs []int) error {
	words := n.repo.WordsByIDs(wordIDs)
	fmt.Printf("\n%d words are due for review:\n", len(wordIDs))
	for _, w := range words {
		fmt.Printf("  %s — %s\n", w.Surface(models.DisplayMixed), w.Meaning)
	}
	return nil
}

func parseDayList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid day number %q", part)
		}
		days = append(days, n)
	}
	return days, nil
}

func readChoice(scanner *bufio.Scanner, max int) int {
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 1 && n <= max {
			return n - 1
		}
		fmt.Printf("enter a number between 1 and %d\n", max)
	}
}
