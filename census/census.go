package census

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wordgametools/handcensus/tiles"
)

// An Oracle classifies a hand as playable or dead. It must be safe for
// concurrent use; the census shares one oracle across all workers.
type Oracle interface {
	Playable(hand *tiles.Vector) bool
}

// checkEvery is how many hands a worker classifies between context checks.
const checkEvery = 1024

// Census drives the full enumeration: every hand from the Enumerator is
// classified by the Oracle, weighted by the Weigher, and accumulated into
// Totals. The search space is partitioned by the counts chosen for the
// first two symbols, and the resulting sub-ranges are spread over worker
// goroutines, each with its own Totals merged at the end.
type Census struct {
	bag     *tiles.Bag
	oracle  Oracle
	enum    *Enumerator
	weigher *Weigher
	threads int

	progressW   io.Writer
	reportEvery uint64

	handsChecked atomic.Uint64
	deadFound    atomic.Uint64
}

// New creates a census over the bag, classifying hands with the oracle.
func New(bag *tiles.Bag, oracle Oracle) *Census {
	return &Census{
		bag:     bag,
		oracle:  oracle,
		enum:    NewEnumerator(bag),
		weigher: NewWeigher(bag),
		threads: max(1, runtime.NumCPU()),
	}
}

// SetThreads sets the number of worker goroutines. Values below 1 reset to
// the CPU count.
func (c *Census) SetThreads(n int) {
	if n < 1 {
		n = max(1, runtime.NumCPU())
	}
	c.threads = n
}

// SetProgress enables periodic progress reporting to w. A line is rewritten
// whenever at least every hands have been classified since the last update;
// values of every at or below 1000 disable the updates but still produce
// the final summary line.
func (c *Census) SetProgress(w io.Writer, every uint64) {
	c.progressW = w
	c.reportEvery = every
}

// HandsChecked returns the number of hands classified so far. It may be
// read while Run is in flight.
func (c *Census) HandsChecked() uint64 {
	return c.handsChecked.Load()
}

// job is a fixed choice of counts for the first two symbols; a worker
// enumerates all completions.
type job struct {
	a, b int
}

// Run enumerates and classifies every hand, returning the merged totals.
// Cancelling the context stops the run cooperatively; the error is then
// ctx.Err() and the totals are partial. A zero draw weight means the
// enumerator emitted a hand exceeding bag capacity; the run aborts rather
// than corrupt the totals.
func (c *Census) Run(ctx context.Context) (Totals, error) {
	start := time.Now()
	c.handsChecked.Store(0)
	c.deadFound.Store(0)

	jobs := c.partition()
	log.Info().
		Int("threads", c.threads).
		Int("partitions", len(jobs)).
		Int("handSize", c.bag.HandSize()).
		Msg("starting hand census")

	jobChan := make(chan job, len(jobs))
	for _, j := range jobs {
		jobChan <- j
	}
	close(jobChan)

	progressDone := make(chan struct{})
	if c.progressW != nil {
		go c.progressLoop(start, progressDone)
	}

	var mu sync.Mutex
	var totals Totals
	g, ctx := errgroup.WithContext(ctx)
	for t := 0; t < c.threads; t++ {
		g.Go(func() error {
			var local Totals
			var stopErr error
			for j := range jobChan {
				var hand tiles.Vector
				hand[0] = uint8(j.a)
				hand[1] = uint8(j.b)
				left := c.bag.HandSize() - j.a - j.b
				done := c.enum.EachFrom(&hand, 2, left, func(h *tiles.Vector) bool {
					n := c.handsChecked.Add(1)
					w := c.weigher.Weight(h)
					if w == 0 {
						stopErr = fmt.Errorf("enumerator produced hand %v exceeding bag capacity", h)
						return false
					}
					if c.oracle.Playable(h) {
						local.RawPlayable++
						local.WeightedPlayable += w
					} else {
						local.RawDead++
						local.WeightedDead += w
						c.deadFound.Add(1)
					}
					if n%checkEvery == 0 {
						select {
						case <-ctx.Done():
							return false
						default:
						}
					}
					return true
				})
				if !done {
					if stopErr != nil {
						return stopErr
					}
					return ctx.Err()
				}
			}
			mu.Lock()
			totals.Merge(local)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	if c.progressW != nil {
		close(progressDone)
		c.printProgress(start)
		fmt.Fprintln(c.progressW)
	}
	elapsed := time.Since(start)
	log.Info().
		Uint64("hands", c.handsChecked.Load()).
		Uint64("dead", c.deadFound.Load()).
		Dur("elapsed", elapsed).
		Msg("census finished")
	if err != nil {
		return totals, err
	}
	return totals, nil
}

// partition splits the search space along the first two symbols' counts.
// Infeasible prefixes (the remaining symbols cannot absorb the remaining
// slots, or the hand cannot be filled that far) are skipped outright.
func (c *Census) partition() []job {
	k := c.bag.HandSize()
	var jobs []job
	for a := 0; a <= min(int(c.enum.caps[0]), k); a++ {
		for b := 0; b <= min(int(c.enum.caps[1]), k-a); b++ {
			left := k - a - b
			if left > c.enum.suffix[2] {
				continue
			}
			jobs = append(jobs, job{a: a, b: b})
		}
	}
	return jobs
}

func (c *Census) progressLoop(start time.Time, done <-chan struct{}) {
	if c.reportEvery <= 1000 {
		<-done
		return
	}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	var lastPrinted uint64
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			n := c.handsChecked.Load()
			if n-lastPrinted >= c.reportEvery {
				lastPrinted = n
				c.printProgress(start)
			}
		}
	}
}

var progressPrinter = message.NewPrinter(language.English)

func (c *Census) printProgress(start time.Time) {
	progressPrinter.Fprintf(c.progressW, "\r%d hands checked | %d dead | %.1fs taken",
		c.handsChecked.Load(), c.deadFound.Load(), time.Since(start).Seconds())
}
