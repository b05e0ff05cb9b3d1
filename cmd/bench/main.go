package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/i5heu/GoBoundedSeq/pkg/list"
	"github.com/i5heu/GoBoundedSeq/pkg/queue"
	"github.com/i5heu/GoBoundedSeq/pkg/stack"
	"github.com/i5heu/GoBoundedSeq/pkg/testbench"
	"github.com/schollz/progressbar/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// BenchmarkResult holds results for one test run.
type BenchmarkResult struct {
	Implementation string  `json:"implementation"`
	MaxSize        int     `json:"max_size"` // 0 = unbounded
	AddsPerCycle   int     `json:"adds_per_cycle"`
	PopsPerCycle   int     `json:"pops_per_cycle"`
	NumMutations   int64   `json:"num_mutations"`      // accepted mutation count
	NumRejected    int64   `json:"num_rejected"`       // adds refused by the bound
	TestDuration   string  `json:"test_duration"`      // e.g. "5s"
	ActualElapsed  string  `json:"actual_elapsed"`     // measured time
	Throughput     float64 `json:"throughput_ops_sec"` // based on accepted mutations
	Timestamp      int64   `json:"timestamp"`
	GoVersion      string  `json:"go_version"`
}

// SystemInfo holds system information.
type SystemInfo struct {
	NumCPU      int     `json:"num_cpu"`
	CPUModel    string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH      string  `json:"go_arch"`
	TotalMemory uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents a complete test session.
type FullReport struct {
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// containerInterface is the workload surface the bench drives.
type containerInterface = interface {
	Add(int) bool
	Peek() (int, bool)
	Pop() bool
	Len() int
}

// Implementation represents a container implementation under test.
type Implementation struct {
	name         string
	description  string
	pkgName      string
	features     []string
	newContainer func(maxSize int) containerInterface
}

// listFIFO adapts List to the bench workload surface: append at the
// tail, peek and pop at the head.
type listFIFO struct {
	l *list.List[int]
}

func (a listFIFO) Add(v int) bool { return a.l.Append(v) }

func (a listFIFO) Peek() (int, bool) { return a.l.Get(0) }

func (a listFIFO) Pop() bool { return a.l.Remove(0) }

func (a listFIFO) Len() int { return a.l.Len() }

// listLIFO adapts List to the bench workload surface: append, peek and
// pop all at the tail.
type listLIFO struct {
	l *list.List[int]
}

func (a listLIFO) Add(v int) bool { return a.l.Append(v) }

func (a listLIFO) Peek() (int, bool) { return a.l.Get(a.l.Len() - 1) }

func (a listLIFO) Pop() bool { return a.l.Remove(a.l.Len() - 1) }

func (a listLIFO) Len() int { return a.l.Len() }

// outputMarkdownTable loads the JSON file and outputs a Markdown table.
func outputMarkdownTable(jsonFile string) {
	data, err := os.ReadFile(jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading JSON file %q: %v\n", jsonFile, err)
		os.Exit(1)
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshalling JSON: %v\n", err)
		os.Exit(1)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "No sessions found in JSON.")
		os.Exit(1)
	}
	// Use the last session for the table.
	lastSession := sessions[len(sessions)-1]
	// Build a map of implementation meta info.
	implMetaMap := make(map[string]Implementation)
	for _, impl := range getImplementations() {
		implMetaMap[impl.name] = impl
	}
	// Build table rows.
	type tableRow struct {
		implementation string
		pkgName        string
		features       string
		throughput     float64
	}
	var rows []tableRow
	for _, bench := range lastSession.Benchmarks {
		meta, ok := implMetaMap[bench.Implementation]
		var pkgName, features string
		if ok {
			pkgName = meta.pkgName
			features = strings.Join(meta.features, ", ")
		}
		rows = append(rows, tableRow{
			implementation: bench.Implementation,
			pkgName:        pkgName,
			features:       features,
			throughput:     bench.Throughput,
		})
	}
	// Sort rows by throughput descending.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].throughput > rows[j].throughput
	})
	fmt.Println("## Last Session Benchmark Summary")
	fmt.Println()
	fmt.Println("| Implementation           | Package         | Features                    | Throughput (ops/sec) |")
	fmt.Println("|--------------------------|-----------------|-----------------------------|----------------------|")
	for _, r := range rows {
		fmt.Printf("| %-24s | %-15s | %-27s | %20.0f |\n",
			r.implementation, r.pkgName, r.features, r.throughput)
	}
}

func main() {
	// Flags.
	testIterations := flag.Int("iter", 5, "Number of test iterations per workload setting")
	capFlag := flag.Int("cap", -1, "If >= 0, test only that max size (0 = unbounded); if -1, sweep the default max size settings")
	jsonExport := flag.Bool("json", false, "Export results as JSON to test-results.json")
	markdownTable := flag.Bool("markdown-table", false, "Output markdown table from test-results.json and exit")
	jsonFileForMarkdown := flag.String("jsonfile", "test-results.json", "Path to JSON file for markdown table")
	progressFlag := flag.Bool("progress", false, "Display a progress bar with ETA")
	flag.Parse()

	if *markdownTable {
		outputMarkdownTable(*jsonFileForMarkdown)
		return
	}

	// Define the max size sweep. 0 keeps the container unbounded, the
	// rest exercise the capacity checks and the full-container reject path.
	var capSettings []int
	if *capFlag >= 0 {
		capSettings = []int{*capFlag}
	} else {
		capSettings = []int{0, 16, 256, 1024, 4096}
	}

	// Define workload configurations: add-heavy, balanced, pop-heavy.
	workloadConfigs := []testbench.Config{
		{AddsPerCycle: 4, PopsPerCycle: 1},
		{AddsPerCycle: 1, PopsPerCycle: 1},
		{AddsPerCycle: 1, PopsPerCycle: 4},
	}

	// Test duration for each iteration.
	testDuration := 5 * time.Second

	// Calculate total number of tests for progress tracking.
	impls := getImplementations()
	totalTests := len(capSettings) * len(workloadConfigs) * (*testIterations) * len(impls)

	var bar *progressbar.ProgressBar
	if *progressFlag {
		bar = progressbar.NewOptions(totalTests,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("benchmarking"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
		)
	}

	var allSessions []FullReport

	// Iterate over the desired max size settings.
	for _, maxSize := range capSettings {
		sysInfo := gatherSystemInfo()

		// Print max size header to stdout.
		fmt.Printf("\n=============================\n")
		fmt.Printf("max size = %d\n", maxSize)
		fmt.Printf("=============================\n")

		var results []BenchmarkResult

		// Loop over each workload configuration.
		for _, cfg := range workloadConfigs {
			fmt.Printf("  [Workload: adds=%d, pops=%d]\n", cfg.AddsPerCycle, cfg.PopsPerCycle)
			for iteration := 1; iteration <= *testIterations; iteration++ {
				fmt.Printf("    iteration %d/%d\n", iteration, *testIterations)
				// For each iteration, run each container implementation.
				for _, impl := range impls {
					runtime.GC()
					c := impl.newContainer(maxSize)

					accepted, rejected, actualTime := testbench.RunTimedTest[int, containerInterface](
						c,
						cfg,
						testDuration,
						func(i int) int { return i },
					)
					throughput := float64(accepted) / actualTime.Seconds()
					timestamp := time.Now().Unix()

					// Print test result to stdout.
					fmt.Printf("    %s => accepted=%d, rejected=%d, throughput=%.0f ops/s, took=%v\n",
						impl.name, accepted, rejected, throughput, actualTime)

					if bar != nil {
						bar.Add(1)
					}

					result := BenchmarkResult{
						Implementation: impl.name,
						MaxSize:        maxSize,
						AddsPerCycle:   cfg.AddsPerCycle,
						PopsPerCycle:   cfg.PopsPerCycle,
						NumMutations:   accepted,
						NumRejected:    rejected,
						TestDuration:   testDuration.String(),
						ActualElapsed:  actualTime.String(),
						Throughput:     throughput,
						Timestamp:      timestamp,
						GoVersion:      runtime.Version(),
					}
					results = append(results, result)
				}
			}
		}

		sessionTime := time.Now().Format(time.RFC3339)
		fr := FullReport{
			SessionTime: sessionTime,
			SystemInfo:  sysInfo,
			Benchmarks:  results,
		}
		allSessions = append(allSessions, fr)
	}

	// After all tests, print a newline so the progress bar line is not overwritten.
	if bar != nil {
		fmt.Fprintln(os.Stderr)
	}

	// If JSON export is requested, append the new sessions to test-results.json.
	if *jsonExport {
		const filename = "test-results.json"
		var previous []FullReport
		if _, err := os.Stat(filename); err == nil {
			data, err := os.ReadFile(filename)
			if err == nil && len(data) > 0 {
				json.Unmarshal(data, &previous)
			}
		}
		updated := append(previous, allSessions...)
		data, err := json.MarshalIndent(updated, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error marshalling JSON:", err)
			os.Exit(1)
		}
		if err = os.WriteFile(filename, data, 0644); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing JSON file:", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote results to %s\n", filename)
	}
}

// gatherSystemInfo collects basic CPU and memory details.
func gatherSystemInfo() SystemInfo {
	numCPU := runtime.NumCPU()
	goArch := runtime.GOARCH

	var cpuModel string
	var cpuSpeed float64
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		cpuModel = infos[0].ModelName
		cpuSpeed = infos[0].Mhz
	}

	var totalMemory uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		totalMemory = vm.Total
	}

	return SystemInfo{
		NumCPU:      numCPU,
		CPUModel:    cpuModel,
		CPUSpeedMHz: cpuSpeed,
		GOARCH:      goArch,
		TotalMemory: totalMemory,
	}
}

// getImplementations enumerates the container implementations.
func getImplementations() []Implementation {
	return []Implementation{
		{
			name:        "Queue",
			pkgName:     "queue",
			description: "FIFO front-end: add at the tail, peek/pop at the head.",
			features:    []string{"FIFO", "Bounded"},
			newContainer: func(maxSize int) containerInterface {
				q := queue.New[int]()
				q.SetMaxSize(maxSize)
				return q
			},
		},
		{
			name:        "Stack",
			pkgName:     "stack",
			description: "LIFO front-end: add, peek and pop at the tail.",
			features:    []string{"LIFO", "Bounded"},
			newContainer: func(maxSize int) containerInterface {
				st := stack.New[int]()
				st.SetMaxSize(maxSize)
				return st
			},
		},
		{
			name:        "List (head removal)",
			pkgName:     "list",
			description: "Index-addressable list driven as a FIFO through its generic index operations.",
			features:    []string{"FIFO", "Bounded", "Indexed"},
			newContainer: func(maxSize int) containerInterface {
				l := list.New[int]()
				l.SetMaxSize(maxSize)
				return listFIFO{l: l}
			},
		},
		{
			name:        "List (tail removal)",
			pkgName:     "list",
			description: "Index-addressable list driven as a LIFO through its generic index operations.",
			features:    []string{"LIFO", "Bounded", "Indexed"},
			newContainer: func(maxSize int) containerInterface {
				l := list.New[int]()
				l.SetMaxSize(maxSize)
				return listLIFO{l: l}
			},
		},
	}
}
