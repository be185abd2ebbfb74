package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"homeprice/internal/ml"
	"homeprice/internal/model"
)

// FileSource reads the column schema and the model from a directory
type FileSource struct {
	dir         string
	columnsFile string
	modelFile   string
}

// NewFileSource creates a file-backed artifact source
func NewFileSource(dir, columnsFile, modelFile string) *FileSource {
	return &FileSource{
		dir:         dir,
		columnsFile: columnsFile,
		modelFile:   modelFile,
	}
}

// Name identifies the source in logs and errors
func (s *FileSource) Name() string {
	return "file:" + s.dir
}

// Load reads both artifacts; nothing is returned unless both succeed
func (s *FileSource) Load(ctx context.Context) (model.ColumnSchema, ml.Regressor, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	columnsPath := filepath.Join(s.dir, s.columnsFile)
	schema, err := readColumns(columnsPath)
	if err != nil {
		return nil, nil, err
	}

	modelPath := filepath.Join(s.dir, s.modelFile)
	regressor, err := ml.LoadModel(modelPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load model %s: %w", modelPath, err)
	}

	return schema, regressor, nil
}

func readColumns(path string) (model.ColumnSchema, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns %s: %w", path, err)
	}

	var columns model.ColumnsFile
	if err := json.Unmarshal(payload, &columns); err != nil {
		return nil, fmt.Errorf("failed to parse columns %s: %w", path, err)
	}
	if columns.DataColumns == nil {
		return nil, fmt.Errorf("columns %s: missing data_columns", path)
	}

	return model.ColumnSchema(columns.DataColumns), nil
}

// ResolveDir anchors a relative artifact directory next to the running
// executable when it exists there, otherwise leaves it relative to the
// working directory.
func ResolveDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return dir
	}
	candidate := filepath.Join(filepath.Dir(exe), dir)
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return dir
}
