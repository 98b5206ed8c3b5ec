package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/task"
)

// taskFile is the wrapped form of a task list on disk. A bare array is
// accepted too.
type taskFile struct {
	Tasks []task.Draft `json:"tasks" yaml:"tasks"`
}

// LoadDrafts reads a task list from a JSON or YAML file, chosen by
// extension. Both a bare array and a {"tasks": [...]} wrapper work.
func LoadDrafts(path string) ([]task.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewCLIError(
			fmt.Sprintf("cannot read task file %s", path),
			"Check the path, or create the file with a 'tasks' list",
			err,
		)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseDrafts(data, yamlDecode)
	default:
		return parseDrafts(data, jsonDecode)
	}
}

type decodeFunc func(data []byte, v any) error

func jsonDecode(data []byte, v any) error { return json.Unmarshal(data, v) }
func yamlDecode(data []byte, v any) error { return yaml.Unmarshal(data, v) }

func parseDrafts(data []byte, decode decodeFunc) ([]task.Draft, error) {
	var bare []task.Draft
	if err := decode(data, &bare); err == nil {
		return bare, nil
	}

	var wrapped taskFile
	if err := decode(data, &wrapped); err != nil {
		return nil, NewCLIError(
			"cannot parse task file",
			"The file must hold a task array or an object with a 'tasks' field",
			err,
		)
	}
	return wrapped.Tasks, nil
}
