// Command cmake-print-ast dumps the tree of a CMakeLists.txt-style file
// as one line per visited node: "DEPTH INDENT NAME (LINE:COL) [EXTRA]".
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cmake-tools/cmakeast"
	"github.com/cmake-tools/cmakeast/ast"
	"github.com/cmake-tools/cmakeast/internal/cache"
	"github.com/cmake-tools/cmakeast/visitor"
)

// exitError carries the process exit code alongside the human-readable
// message cobra prints.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func main() {
	var (
		watch    bool
		cacheDir string
	)

	rootCmd := &cobra.Command{
		Use:           "cmake-print-ast FILE",
		Short:         "Dump the parsed tree of a CMake listfile",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cache.New(cacheDir)
			if watch {
				return runWatch(cmd.OutOrStdout(), args[0], c)
			}
			return runOnce(cmd.OutOrStdout(), args[0], c)
		},
	}

	rootCmd.Flags().BoolVar(&watch, "watch", false, "re-parse and re-print whenever FILE changes")
	rootCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "directory for the cbor-encoded token cache (default: in-memory only)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cmake-print-ast:", err)
		if ee, ok := err.(*exitError); ok {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func runOnce(out io.Writer, path string, c *cache.Cache) error {
	text, err := readFile(path)
	if err != nil {
		return err
	}
	body, err := parseCached(text, c)
	if err != nil {
		return &exitError{code: 1, err: err}
	}
	printTree(out, body)
	return nil
}

func runWatch(out io.Writer, path string, c *cache.Cache) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return &exitError{code: 2, err: fmt.Errorf("starting watcher: %w", err)}
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return &exitError{code: 2, err: fmt.Errorf("watching %s: %w", path, err)}
	}

	if err := runOnce(out, path, c); err != nil {
		fmt.Fprintln(os.Stderr, "cmake-print-ast:", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := runOnce(out, path, c); err != nil {
				fmt.Fprintln(os.Stderr, "cmake-print-ast:", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return &exitError{code: 2, err: fmt.Errorf("watching %s: %w", path, err)}
		}
	}
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &exitError{code: 2, err: err}
	}
	return string(data), nil
}

// parseCached tokenizes text via c, skipping the scan+compress stages
// on a cache hit, then always parses fresh (parsing is cheap relative
// to re-lexing, and the cache only needs to save the expensive half of
// the pipeline).
func parseCached(text string, c *cache.Cache) (*ast.ToplevelBody, error) {
	digest := cache.Digest(text)

	toks, hit, err := c.Get(digest)
	if err != nil {
		return nil, err
	}
	if !hit {
		toks, err = cmakeast.Tokenize(text)
		if err != nil {
			return nil, err
		}
		if err := c.Put(digest, toks); err != nil {
			return nil, err
		}
	}

	return cmakeast.Parse(text, toks)
}

func printTree(out io.Writer, body *ast.ToplevelBody) {
	var buf bytes.Buffer

	printLine := func(depth int, node ast.Node, name, extra string) {
		pos := node.Position()
		fmt.Fprintf(&buf, "%d %s%s (%d:%d)", depth, strings.Repeat(" ", depth), name, pos.Line, pos.Column)
		if extra != "" {
			fmt.Fprintf(&buf, " %s", extra)
		}
		buf.WriteByte('\n')
	}

	cb := visitor.Callbacks{
		Toplevel:    func(name string, n ast.Node, depth int) { printLine(depth, n, name, "") },
		WhileStmnt:  func(name string, n ast.Node, depth int) { printLine(depth, n, name, "") },
		Foreach:     func(name string, n ast.Node, depth int) { printLine(depth, n, name, "") },
		FunctionDef: func(name string, n ast.Node, depth int) { printLine(depth, n, name, "") },
		MacroDef:    func(name string, n ast.Node, depth int) { printLine(depth, n, name, "") },
		IfBlock:     func(name string, n ast.Node, depth int) { printLine(depth, n, name, "") },
		IfStmnt:     func(name string, n ast.Node, depth int) { printLine(depth, n, name, "") },
		ElseifStmnt: func(name string, n ast.Node, depth int) { printLine(depth, n, name, "") },
		ElseStmnt:   func(name string, n ast.Node, depth int) { printLine(depth, n, name, "") },
		FunctionCall: func(name string, n ast.Node, depth int) {
			printLine(depth, n, name, n.(*ast.FunctionCall).Name)
		},
		Word: func(name string, n ast.Node, depth int) {
			w := n.(*ast.Word)
			printLine(depth, n, name, fmt.Sprintf("%s %s", w.Type, w.Contents))
		},
	}

	visitor.Recurse(body, cb)
	out.Write(buf.Bytes())
}
