// main is the entry point for the todo lists application
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cirocosta/todolists/internal/api"
	"github.com/cirocosta/todolists/internal/app"
	"github.com/cirocosta/todolists/internal/client"
	"github.com/cirocosta/todolists/internal/model"
	"github.com/cirocosta/todolists/internal/query"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = runServer(args)
	case "openapi-gen":
		err = generateOpenAPI(args)
	case "todos":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = printTodos(ctx, args, os.Stdout)
		stop()
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd, err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`
Usage: todolists <command> [options]

Commands:
  run          Start the HTTP server
  openapi-gen  Generate OpenAPI documentation
  todos        Print the todos held by a running server

Run 'todolists <command> -h' for more information on a command.
`)
}

func runServer(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to a YAML config file")
	addr := fs.String("addr", "", "HTTP server address, overrides the config")
	_ = fs.Parse(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, *configPath, *addr)
}

func generateOpenAPI(args []string) error {
	fs := flag.NewFlagSet("openapi-gen", flag.ExitOnError)
	output := fs.String("o", "openapi.json", "Output file path")
	_ = fs.Parse(args)

	data, err := json.MarshalIndent(api.Document(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		return fmt.Errorf("write openapi document to file '%s': %w", *output, err)
	}

	fmt.Printf("OpenAPI document generated at %s\n", *output)
	return nil
}

func printTodos(ctx context.Context, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("todos", flag.ExitOnError)
	server := fs.String("server", "http://localhost:8080", "Base URL of the API")
	listID := fs.String("list", "", "Only print todos of this list")
	timeout := fs.Duration("timeout", 10*time.Second, "Request timeout")
	watch := fs.Duration("watch", 0, "Reprint the todos at this interval until interrupted")
	_ = fs.Parse(args)

	c := client.New(*server)

	if err := showTodos(ctx, c, *listID, *timeout, w); err != nil {
		return err
	}
	if *watch <= 0 {
		return nil
	}

	ticker := time.NewTicker(*watch)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if err := refreshTodos(ctx, c, *listID, *timeout, w); err != nil {
			return err
		}
	}
}

func showTodos(ctx context.Context, c *client.Client, listID string, timeout time.Duration, w io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	todos, err := c.Todos(ctx, listID)
	if err != nil {
		return err
	}

	writeTodos(w, todos)
	return nil
}

// refreshTodos reads the todos again, falling back to the previous result
// when the server cannot be reached
func refreshTodos(ctx context.Context, c *client.Client, listID string, timeout time.Duration, w io.Writer) error {
	key := query.TodosKey(listID)
	c.Cache().Invalidate(key)

	err := showTodos(ctx, c, listID, timeout, w)
	if err == nil {
		return nil
	}

	body, _, ok := c.Cache().Peek(key)
	if !ok {
		return err
	}

	var todos []model.Todo
	if jsonErr := json.Unmarshal(body, &todos); jsonErr != nil {
		return err
	}

	fmt.Fprintf(w, "refresh failed, showing previous result: %v\n", err)
	writeTodos(w, todos)
	return nil
}

func writeTodos(w io.Writer, todos []model.Todo) {
	for _, todo := range todos {
		mark := " "
		if todo.Completed {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s\t%s\n", mark, todo.ID, todo.Title)
	}

	summary := model.Summarize(todos)
	fmt.Fprintf(w, "%d todos, %d completed, %d pending\n", summary.Total, summary.Completed, summary.Pending)
}
