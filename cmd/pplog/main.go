package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const (
	nocolor = 0
	red     = 31
	green   = 32
	yellow  = 33
	blue    = 36
	gray    = 37
)

type prettyPrinter func(entry map[string]interface{})

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "pplog [LOGFILE]",
	Short: "Pretty print the JSON log stream produced by the logging facade",
	Long: `pplog reads the facade's JSON log stream from LOGFILE, or from stdin
when piped, and re-flows each entry into a colorized single line.

JQ: https://stedolan.github.io/jq/
	jq is great! You can use it to transform json streams.

	Here's an example of how you can exclude the subsystem field:
		cat myapp.log | jq 'del(.subsystem)' | pplog
	Here's an example of filtering for events that match a specific field:
		cat myapp.log | jq 'select(.level == "ERROR")' | pplog`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		processLines(bufio.NewReader(file), printLine)
		return nil
	}
	fi, err := os.Stdin.Stat()
	if err != nil {
		return err
	}
	if fi.Mode()&os.ModeNamedPipe == 0 {
		// No piped input
		return cmd.Usage()
	}
	processLines(os.Stdin, printLine)
	return nil
}

func processLines(r io.Reader, print prettyPrinter) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			// Pass non-JSON lines through untouched.
			fmt.Println(line)
			continue
		}
		print(entry)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "reading standard input:", err)
	}
}

func extractAndRemove(m map[string]interface{}, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	delete(m, key)
	return fmt.Sprintf("%v", v), true
}

func printLine(entry map[string]interface{}) {
	level, _ := extractAndRemove(entry, "level")
	timestamp, timestampExists := extractAndRemove(entry, "time")
	category, _ := extractAndRemove(entry, "category")
	message, _ := extractAndRemove(entry, "message")

	if timestampExists {
		if parsedTime, err := time.Parse(time.RFC3339, timestamp); err == nil {
			timestamp = parsedTime.Format("0102 15:04:05.999")
		}
	}

	var theRest []string

	for key, value := range entry {
		var keyValue string
		// quote the value if necessary
		if strings.Contains(fmt.Sprintf("%v", value), " ") {
			keyValue = fmt.Sprintf("%s=\"%v\"", key, value)
		} else {
			keyValue = fmt.Sprintf("%s=%v", key, value)
		}
		theRest = append(theRest, keyValue)
	}
	sort.Strings(theRest)
	theRestStr := strings.Join(theRest, " ")

	padded := fmt.Sprintf("%-5s", level) // Have to pad it before colorization
	if !noColor {
		switch strings.ToUpper(level) {
		case "ERROR", "FATAL":
			padded = colorize(red, padded)
		case "DEBUG":
			padded = colorize(gray, padded)
		default:
			padded = colorize(green, padded)
		}
	}

	fmt.Printf("%-17s %5s %-14s | \"%s\" %s\n", timestamp, padded, category, message, theRestStr)
}

func colorize(color int, str string) string {
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", color, str)
}
