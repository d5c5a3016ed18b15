package channels

import (
	"context"
	"sync"
	"time"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"

	"github.com/televisionhq/television/internal/crashlog"
	"github.com/televisionhq/television/internal/entry"
	"github.com/televisionhq/television/internal/matcher"
)

const dockerIcon = "docker"
const dockerListTimeout = 10 * time.Second

type dockerImage struct {
	repository string
	tag        string
	imageID    string
}

// DockerChannel surfaces locally available Docker images, grounded on
// television-channels' docker.rs and adapted to the docker/docker Go client
// the way the Docker TUI connects to the daemon in main.go.
type DockerChannel struct {
	matcher *matcher.Matcher[dockerImage]

	mu      sync.Mutex
	lastErr error
}

// NewDocker connects to the local Docker daemon using the standard
// DOCKER_HOST environment negotiation and starts listing images in the
// background.
func NewDocker() (*DockerChannel, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}

	m := matcher.New[dockerImage](matcher.DefaultConfig().WithThreads(1))
	m.SetProducing(true)

	c := &DockerChannel{matcher: m}

	injector := m.Injector()
	crashlog.SafeGo("", "channel-run:docker", func() { c.loadDockerImages(cli, injector) })

	return c, nil
}

func (c *DockerChannel) loadDockerImages(cli *client.Client, injector matcher.Injector[dockerImage]) {
	defer c.matcher.SetProducing(false)
	defer cli.Close()

	ctx, cancel := context.WithTimeout(context.Background(), dockerListTimeout)
	defer cancel()

	f := filters.NewArgs(filters.Arg("dangling", "false"))
	summaries, err := cli.ImageList(ctx, image.ListOptions{All: true, Filters: f})
	if err != nil {
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		return
	}

	for _, s := range summaries {
		if len(s.RepoTags) == 0 || len(s.RepoDigests) == 0 {
			continue
		}
		di := dockerImage{
			repository: s.RepoDigests[0],
			tag:        s.RepoTags[0],
			imageID:    s.ID,
		}
		injector.Push(di, func(item dockerImage, cols []string) {
			cols[0] = item.repository
		})
	}
}

func toDockerEntry(v dockerImage, ranges []entry.Range) entry.Entry {
	return entry.New(v.repository).
		WithValue(v.tag).
		WithIcon(dockerIcon).
		WithDisplayMatches(ranges)
}

func (c *DockerChannel) Find(pattern string) { c.matcher.Find(pattern) }

func (c *DockerChannel) Results(num, offset int) []entry.Entry {
	c.matcher.Tick()
	rows := c.matcher.Results(num, offset)
	out := make([]entry.Entry, len(rows))
	for i, r := range rows {
		out[i] = toDockerEntry(r.Item, r.DisplayMatches)
	}
	return out
}

func (c *DockerChannel) GetResult(index int) (entry.Entry, bool) {
	r, ok := c.matcher.GetResult(index)
	if !ok {
		return entry.Entry{}, false
	}
	return toDockerEntry(r.Item, r.DisplayMatches), true
}

func (c *DockerChannel) ResultCount() int { return c.matcher.Snapshot().Matched }
func (c *DockerChannel) TotalCount() int  { return c.matcher.Snapshot().Total }
func (c *DockerChannel) Running() bool    { return c.matcher.Snapshot().Running }

func (c *DockerChannel) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *DockerChannel) Shutdown() { c.matcher.Shutdown() }
