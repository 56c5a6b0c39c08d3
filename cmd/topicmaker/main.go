package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lovoo/goka"
	"github.com/niksmo/emporium/config"
	"github.com/niksmo/emporium/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	partitions        = 3
	replicationFactor = 3
	minInsyncReplicas = "1"
)

type cleanupPolicy string

const (
	deletePolicy  cleanupPolicy = "delete"
	compactPolicy cleanupPolicy = "compact"
)

// A topicGroup is created with one CreateTopics request.
type topicGroup struct {
	policy cleanupPolicy
	topics []string
}

// plan lists the event streams and the compacted rating table that the
// product rating processor persists to.
func plan(cfg config.Config) []topicGroup {
	return []topicGroup{
		{
			policy: deletePolicy,
			topics: []string{
				cfg.Broker.Topics.OrderEvents,
				cfg.Broker.Topics.ReviewEvents,
			},
		},
		{
			policy: compactPolicy,
			topics: []string{
				toGroupTable(cfg.Broker.Consumers.ProductRatingGroup),
			},
		},
	}
}

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	groups := plan(cfg)

	cl, err := kadm.NewOptClient(kgo.SeedBrokers(cfg.Broker.SeedBrokers...))
	if err != nil {
		printFail(err)
		return
	}
	defer cl.Close()

	printStart(groups)
	defer printComplete(time.Now())

	for _, g := range groups {
		if err := makeTopics(sigCtx, cl, g); err != nil {
			printFail(err)
			return
		}
	}
}

func makeTopics(ctx context.Context, cl *kadm.Client, g topicGroup) error {
	policy := string(g.policy)
	minISR := minInsyncReplicas
	topicConfig := map[string]*string{
		"cleanup.policy":      &policy,
		"min.insync.replicas": &minISR,
	}

	responses, err := cl.CreateTopics(
		ctx, partitions, replicationFactor, topicConfig, g.topics...,
	)
	if err != nil {
		return err
	}

	var errs []error
	for _, res := range responses.Sorted() {
		switch {
		case res.Err == nil:
			fmt.Printf("topic: %q successfully created\n", res.Topic)
		case errors.Is(res.Err, kerr.TopicAlreadyExists):
			fmt.Printf("topic: %q already exists\n", res.Topic)
		default:
			errs = append(errs, fmt.Errorf("%s: %w", res.Topic, res.Err))
		}
	}
	return errors.Join(errs...)
}

func printStart(groups []topicGroup) {
	fmt.Println("initializing topics...")
	for _, g := range groups {
		for _, t := range g.topics {
			fmt.Printf("\t- %q (%s)\n", t, g.policy)
		}
	}
	fmt.Println()
}

func printComplete(start time.Time) {
	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed to create topics: \n%s\n", err)
}

func toGroupTable(group string) string {
	return string(goka.GroupTable(goka.Group(group)))
}
