package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/CooperTran2196/scenetree/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sceneExt is the file extension of Unity scene files
const sceneExt = ".unity"

// sceneList is the structured form of the list command
type sceneList struct {
	Dir    string   `json:"dir" yaml:"dir"`
	Scenes []string `json:"scenes" yaml:"scenes"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List the scene files in a directory",
		Long: `List the .unity scene files in a directory.

Without an argument the scenes directory from the config file (or
SCENETREE_SCENES_DIR) is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.ScenesDir
			if len(args) == 1 {
				dir = args[0]
			}
			return a.runList(cmd, dir)
		},
	}
}

func (a *app) runList(cmd *cobra.Command, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("scenes directory not found: %s", dir)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	names, err := findScenes(dir)
	if err != nil {
		return err
	}
	a.logger.Debug("listed scenes", zap.String("dir", dir), zap.Int("count", len(names)))

	out := cmd.OutOrStdout()
	if output.IsStructured(a.format) {
		return a.printer(out).Print(sceneList{Dir: dir, Scenes: names})
	}
	output.NewConsole(out, a.styled(out)).FormatSceneList(dir, names)
	return nil
}

// findScenes returns the sorted base names of the scene files in dir
func findScenes(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+sceneExt))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	sort.Strings(names)
	return names, nil
}
