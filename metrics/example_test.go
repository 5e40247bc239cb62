package metrics_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonwraymond/statushub/metrics"
)

func ExampleRegistry_Snapshot() {
	ctx := context.Background()

	reg, err := metrics.NewRegistry(ctx, metrics.RegistryConfig{ServiceName: "example"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer reg.Shutdown(ctx)

	counter, _ := reg.Meter("example").Int64Counter("health_queries")
	counter.Add(ctx, 1)

	snap, _ := reg.Snapshot(ctx)
	fmt.Println("has counter:", strings.Contains(string(snap), "health_queries"))
	fmt.Println("content type is text:", strings.HasPrefix(reg.ContentType(), "text/plain"))
	// Output:
	// has counter: true
	// content type is text: true
}
