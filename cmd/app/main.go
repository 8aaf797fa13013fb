package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joaovbs/sugestor/configs"
	"github.com/joaovbs/sugestor/internal/repository"
	"github.com/joaovbs/sugestor/internal/tui"
	"github.com/joaovbs/sugestor/pkg/model"
	"github.com/joaovbs/sugestor/pkg/suggest/dictionary"
	"github.com/joaovbs/sugestor/pkg/suggest/engine"
)

func main() {
	var (
		configFile    = flag.String("config", "configs/app_config.json", "Path to configuration file")
		interfaceFlag = flag.Bool("gui", false, "use terminal UI")
	)
	flag.Parse()

	cfg, err := configs.UploadLocalConfiguration(*configFile)
	if err != nil {
		panic(err)
	}

	if *interfaceFlag {
		initGUI(cfg)
		return
	}

	log := newLogger(os.Stderr, cfg.LogLevel)

	e, repo, corpus := buildEngine(cfg, log)
	defer repo.Close()

	fmt.Printf("Loaded %d products. Enter queries (q to exit, !accept <term> to keep a spelling):\n", len(corpus))

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		query = strings.TrimSpace(query)
		if query == "q" {
			return
		}
		if term, ok := strings.CutPrefix(query, "!accept "); ok {
			if err := e.Accept(term); err != nil {
				fmt.Printf("could not store %q: %v\n", term, err)
			}
			continue
		}

		t := time.Now()
		present(e.Suggest(query, corpus))
		fmt.Printf("--Lookup time: %v--\n", time.Since(t))
	}
}

func present(result model.CorrectionResult) {
	if !result.NeedsCorrection {
		fmt.Println("No correction needed.")
		return
	}
	fmt.Printf("Did you mean %q? (confidence %.2f, %s)\n",
		result.Suggestion, result.Confidence, result.Type)
}

func buildEngine(cfg *configs.ConfigData, log *model.Logger) (*engine.Engine, *repository.DictionaryRepository, []model.Document) {
	repo, err := repository.NewDictionaryRepository(cfg.StorePath, log)
	if err != nil {
		panic(err)
	}

	terms := dictionary.Default()
	if cfg.DictionaryPath != "" {
		terms, err = loadDictionary(cfg.DictionaryPath)
		if err != nil {
			panic(err)
		}
	}

	corpus, err := loadCorpus(cfg.CorpusPath)
	if err != nil {
		panic(err)
	}

	return engine.New(cfg.EngineConfig(), log, terms, repo), repo, corpus
}

func loadCorpus(path string) ([]model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var corpus []model.Document
	if err := json.NewDecoder(f).Decode(&corpus); err != nil {
		return nil, err
	}
	return corpus, nil
}

func loadDictionary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var terms []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	return terms, s.Err()
}

func newLogger(out *os.File, level string) *model.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "error":
		lvl = slog.LevelError
	}
	return model.NewLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: model.Replacer,
	})))
}

func initGUI(cfg *configs.ConfigData) {
	lc := tui.NewLogChannel(1024)
	log := model.NewLogger(slog.New(slog.NewTextHandler(lc, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: model.Replacer,
	})))

	e, repo, corpus := buildEngine(cfg, log)
	defer repo.Close()

	m := tui.InitModel(
		lc,
		cfg.TUIBorderColor,
		func() int { return e.CacheStats().Size },
		func(query string) model.CorrectionResult { return e.Suggest(query, corpus) },
		e.Accept,
	)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		panic(err)
	}
}
