// Command loadtest drives concurrent conversion requests against a running timeconv server.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"
)

// convertRequest mirrors the POST /convert body
type convertRequest struct {
	Unit     string  `json:"unit"`
	Value    float64 `json:"value"`
	Decimals *int    `json:"decimals,omitempty"`
}

// convertResponse holds the fields of the response the load test inspects
type convertResponse struct {
	Cached bool `json:"cached"`
}

type scenario struct {
	Name     string
	Unit     string
	Value    float64
	Decimals int // -1 uses the server default
}

type result struct {
	Scenario     string
	Success      bool
	Cached       bool
	ResponseTime time.Duration
	Err          error
}

type stats struct {
	mu            sync.Mutex
	total         int
	succeeded     int
	failed        int
	cacheHits     int
	responseTimes []time.Duration
	errorCounts   map[string]int
	scenarioStats map[string]int
}

func (s *stats) record(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarioStats[r.Scenario]++
	s.responseTimes = append(s.responseTimes, r.ResponseTime)
	if r.Success {
		s.succeeded++
		if r.Cached {
			s.cacheHits++
		}
		return
	}
	s.failed++
	msg := "unknown"
	if r.Err != nil {
		msg = r.Err.Error()
	}
	s.errorCounts[msg]++
}

func (s *stats) completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.succeeded + s.failed
}

var scenarios = []scenario{
	{"hours", "h", 1.5, -1},
	{"days", "d", 3, -1},
	{"weeks precise", "w", 1, 6},
	{"years", "y", 2, -1},
	{"negative millis", "ms", -1500, -1},
	{"minutes", "m", 90, 0},
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the timeconv server")
	delayMs := flag.Int("delay", 0, "Delay between requests of one worker in milliseconds")
	flag.Parse()

	fmt.Printf("Load testing %s with %d scenarios\n", *baseURL, len(scenarios))
	fmt.Printf("Concurrency: %d, requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	st := &stats{
		total:         *totalRequests,
		responseTimes: make([]time.Duration, 0, *totalRequests),
		errorCounts:   make(map[string]int),
		scenarioStats: make(map[string]int),
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, time.Duration(*delayMs)*time.Millisecond, jobs, st)
		}()
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			if done := st.completed(); done > 0 {
				fmt.Printf("Progress: %d/%d (%.1f%%)\n", done, st.total, float64(done)/float64(st.total)*100)
			}
		}
	}()

	start := time.Now()
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	printResults(st, time.Since(start))
	if st.failed > 0 {
		os.Exit(1)
	}
}

func worker(baseURL string, delay time.Duration, jobs <-chan int, st *stats) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delay > 0 {
			time.Sleep(delay)
		}

		sc := scenarios[rand.Intn(len(scenarios))]
		st.record(send(client, baseURL, sc))
	}
}

func send(client *http.Client, baseURL string, sc scenario) result {
	res := result{Scenario: sc.Name}

	body := convertRequest{Unit: sc.Unit, Value: sc.Value}
	if sc.Decimals >= 0 {
		d := sc.Decimals
		body.Decimals = &d
	}

	payload, err := json.Marshal(body)
	if err != nil {
		res.Err = err
		return res
	}

	start := time.Now()
	resp, err := client.Post(baseURL+"/convert", "application/json", bytes.NewReader(payload))
	res.ResponseTime = time.Since(start)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		res.Err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		return res
	}

	var decoded convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		res.Err = fmt.Errorf("malformed response: %w", err)
		return res
	}

	res.Success = true
	res.Cached = decoded.Cached
	return res
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(st *stats, elapsed time.Duration) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sorted := append([]time.Duration(nil), st.responseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	fmt.Println("\n================= RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", st.total)
	fmt.Printf("Successful Requests: %d\n", st.succeeded)
	fmt.Printf("Failed Requests:     %d\n", st.failed)
	fmt.Printf("Cache Hits:          %d\n", st.cacheHits)
	fmt.Printf("Total Time:          %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(st.succeeded)/elapsed.Seconds())

	fmt.Println("\n-------------- RESPONSE TIMES --------------")
	fmt.Printf("Average: %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Min:     %v\n", sorted[0])
		fmt.Printf("Max:     %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50:     %v\n", percentile(sorted, 50))
	fmt.Printf("P90:     %v\n", percentile(sorted, 90))
	fmt.Printf("P99:     %v\n", percentile(sorted, 99))

	fmt.Println("\n------------ SCENARIO DISTRIBUTION ------------")
	names := make([]string, 0, len(st.scenarioStats))
	for name := range st.scenarioStats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-16s %d\n", name, st.scenarioStats[name])
	}

	if st.failed > 0 {
		fmt.Println("\n------------- ERROR DISTRIBUTION -------------")
		for msg, count := range st.errorCounts {
			fmt.Printf("%-40s %d\n", msg, count)
		}
	}
}
