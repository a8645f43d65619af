// Package dataset loads recorded tic-tac-toe states from text files.
// Each useful line is 10 whitespace-separated integers: 9 state vector
// components (+1 X, -1 O, 0 empty, row-major) and one label. Lines
// with any other shape are skipped.
package dataset

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/qychen/tictacgo/pkg/common"
	"github.com/qychen/tictacgo/pkg/knn"
)

const recordFields = common.SquareCount + 1

// KindFromPath infers the dataset kind from the file name: "single"
// means move-labeled, "final" means outcome-labeled, anything else
// defaults to move-labeled.
func KindFromPath(filePath string) knn.DatasetKind {
	var name = strings.ToLower(filepath.Base(filePath))
	if strings.Contains(name, "final") && !strings.Contains(name, "single") {
		return knn.OutcomeLabeled
	}
	return knn.MoveLabeled
}

func Load(filePath string) (knn.Dataset, error) {
	var result = knn.Dataset{Kind: KindFromPath(filePath)}

	file, err := os.Open(filePath)
	if err != nil {
		return result, err
	}
	defer file.Close()

	var skipped = 0
	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var record, ok = parseRecord(line)
		if !ok {
			skipped++
			continue
		}
		result.Records = append(result.Records, record)
	}
	if err := scanner.Err(); err != nil {
		return result, err
	}
	if skipped > 0 {
		log.Println("loadDataset",
			"filepath", filePath,
			"skippedLines", skipped)
	}
	return result, nil
}

func parseRecord(line string) (knn.Record, bool) {
	var fields = strings.Fields(line)
	if len(fields) != recordFields {
		return knn.Record{}, false
	}
	var record knn.Record
	for i, field := range fields {
		var value, err = strconv.Atoi(field)
		if err != nil {
			return knn.Record{}, false
		}
		if i < common.SquareCount {
			record.State[i] = value
		} else {
			record.Label = value
		}
	}
	return record, true
}
