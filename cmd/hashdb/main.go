package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gostonefire/hashdb"
	"github.com/gostonefire/hashdb/hashfunc"
)

func main() {
	hashName := flag.String("hash", "double", "hash function: double, fnv, djb2, xxhash or xxh3")
	debug := flag.Bool("debug", false, "log resizes to stderr")
	maxCapacity := flag.Uint64("max", 0, "max number of slots, 0 for unlimited")
	flag.Parse()

	h, ok := hashfunc.ByName(*hashName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown hash function %q\n", *hashName)
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}

	table, err := hashdb.New(
		hashdb.WithHashFunction(h),
		hashdb.WithMaxCapacity(*maxCapacity),
		hashdb.WithLogger(hashdb.NewTextLogger(os.Stderr, level)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing table: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Type 'help' for available commands.")

	r := &repl{table: table, out: os.Stdout}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		if !r.processCommand(scanner.Text()) {
			break
		}
	}
}

// repl - Runs commands against one table and prints results to out
type repl struct {
	table *hashdb.Table
	out   io.Writer
}

// processCommand - Runs one input line, it returns false when the session should end.
// Keys are taken from the input line, which is a fresh string per line and therefore safe to keep in
// the table without copying.
func (r *repl) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	switch strings.ToLower(parts[0]) {
	case "set", "add":
		if len(parts) < 3 {
			r.println("Usage:", strings.ToUpper(parts[0]), "key value")
			return true
		}
		key := hashdb.StringKey(parts[1])
		value := strings.Join(parts[2:], " ")
		var err error
		if strings.ToLower(parts[0]) == "set" {
			err = r.table.Set(key, value)
		} else {
			err = r.table.Add(key, value)
		}
		r.result(err)

	case "get":
		if len(parts) != 2 {
			r.println("Usage: GET key")
			return true
		}
		value, err := r.table.Get(hashdb.StringKey(parts[1]))
		if err != nil {
			r.result(err)
			return true
		}
		fmt.Fprintf(r.out, "%v\n", value)

	case "del", "delete":
		if len(parts) != 2 {
			r.println("Usage: DEL key")
			return true
		}
		_, err := r.table.Delete(hashdb.StringKey(parts[1]))
		r.result(err)

	case "len":
		fmt.Fprintf(r.out, "%d\n", r.table.Len())

	case "cap":
		fmt.Fprintf(r.out, "%d\n", r.table.Cap())

	case "stat":
		stat := r.table.Stat(false)
		fmt.Fprintf(r.out, "records=%d tombstones=%d empty=%d capacity=%d fill=%.2f%% avg_probe=%.2f max_probe=%d fixed=%t\n",
			stat.Records, stat.Tombstones, stat.Empty, stat.Capacity, stat.FillPercentage,
			stat.AverageProbeLength, stat.MaxProbeLength, r.table.IsFixed())

	case "dump":
		if _, err := r.table.WriteText(r.out); err != nil {
			r.result(err)
		}

	case "json":
		data, err := r.table.ToJSON()
		if err != nil {
			r.result(err)
			return true
		}
		fmt.Fprintf(r.out, "%s\n", data)

	case "clear":
		r.table.Clear()
		r.result(nil)

	case "reset":
		r.result(r.table.Reset())

	case "fix":
		if len(parts) != 2 || (parts[1] != "on" && parts[1] != "off") {
			r.println("Usage: FIX on|off")
			return true
		}
		r.table.Fix(parts[1] == "on")
		r.result(nil)

	case "ensure":
		if len(parts) != 2 {
			r.println("Usage: ENSURE n")
			return true
		}
		n, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			r.result(err)
			return true
		}
		r.result(r.table.EnsureCapacity(n))

	case "help":
		r.printHelp()

	case "exit", "quit":
		return false

	default:
		r.println("Unknown command. Type 'help' for available commands.")
	}

	return true
}

func (r *repl) result(err error) {
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	r.println("OK")
}

func (r *repl) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *repl) printHelp() {
	r.println("Available commands:")
	r.println("  SET key value   - Store a value, replacing any existing one")
	r.println("  ADD key value   - Store a value, failing if the key exists")
	r.println("  GET key         - Retrieve a value by key")
	r.println("  DEL key         - Remove a key")
	r.println("  LEN             - Show number of entries")
	r.println("  CAP             - Show number of slots")
	r.println("  STAT            - Show slot and probe statistics")
	r.println("  DUMP            - List all entries as text")
	r.println("  JSON            - List all entries as JSON")
	r.println("  CLEAR           - Remove all entries, keep capacity")
	r.println("  RESET           - Remove all entries, return to default capacity")
	r.println("  FIX on|off      - Disable or enable automatic resizing")
	r.println("  ENSURE n        - Grow to at least n slots")
	r.println("  HELP            - Show this help")
	r.println("  EXIT/QUIT       - Exit the program")
}
