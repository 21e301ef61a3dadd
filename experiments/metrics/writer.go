package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

const (
	Minimax = "minimax"
	MCTS    = "mcts"
)

// AgentConfig describes one searcher taking part in an experiment.
type AgentConfig struct {
	ID          int
	Algorithm   string // Minimax or MCTS
	Depth       int
	Duration    time.Duration
	Episodes    int
	Exploration float64
	Seed        uint64
}

type GameRecord struct {
	ID     int
	Red    int // AgentConfig.ID
	Yellow int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// moveRow is the parquet layout of a MoveRecord.
type moveRow struct {
	Game       int32  `parquet:"game"`
	Step       int32  `parquet:"step"`
	Disc       string `parquet:"disc,dict"`
	Column     int32  `parquet:"column"`
	Algorithm  string `parquet:"algorithm,dict"`
	DurationUs int64  `parquet:"duration_us"`
	Episodes   int64  `parquet:"episodes"`
	Nodes      int64  `parquet:"nodes"`
	Cutoffs    int64  `parquet:"cutoffs"`
	MaxDepth   int32  `parquet:"max_depth"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the files of one experiment run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "algorithm", "depth", "duration", "episodes", "exploration", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Algorithm,
			strconv.Itoa(config.Depth),
			config.Duration.String(),
			strconv.Itoa(config.Episodes),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		})
	}

	if err := w.writeCSV("agent_configs.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "red", "yellow", "starting_disc", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Red),
			strconv.Itoa(record.Yellow),
			record.StartingDisc,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}

	if err := w.writeCSV("game_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	return nil
}

// WriteMoveRecords stores one row per move as zstd-compressed parquet.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([]moveRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, moveRow{
			Game:       int32(record.Game),
			Step:       int32(record.Step),
			Disc:       record.Disc,
			Column:     int32(record.Column),
			Algorithm:  record.Algorithm,
			DurationUs: record.Duration.Microseconds(),
			Episodes:   int64(record.Episodes),
			Nodes:      int64(record.Nodes),
			Cutoffs:    int64(record.Cutoffs),
			MaxDepth:   int32(record.MaxDepth),
		})
	}

	path := filepath.Join(w.baseDir, "move_records.parquet")
	if err := parquet.WriteFile(path, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}
