package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/equipbest/internal/repositories/transfers"
)

const defaultKeep = 100

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	keep := int64(defaultKeep)
	if raw := os.Getenv("KEEP"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			log.Fatalf("Invalid KEEP value %q", raw)
		}
		keep = parsed
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	repo, err := transfers.NewRedisRepository(&transfers.Config{Client: client})
	if err != nil {
		log.Fatal("Failed to create transfers repository:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Printf("Scanning transfer journals (keeping the newest %d entries)...\n", keep)

	iter := client.Scan(ctx, 0, transfers.KeyPattern(), 0).Iterator()

	var oversized []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		length, err := client.LLen(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}
		if length > keep {
			fmt.Printf("✗ %s holds %d entries\n", key, length)
			oversized = append(oversized, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d journals, found %d over the limit\n", checkedCount, len(oversized))

	if len(oversized) == 0 {
		fmt.Println("Nothing to prune!")
		return
	}

	fmt.Print("\nDo you want to TRIM these journals? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range oversized {
		characterID, ok := transfers.CharacterIDFromKey(key)
		if !ok {
			continue
		}
		out, err := repo.Trim(ctx, transfers.TrimInput{CharacterID: characterID, Keep: keep})
		if err != nil {
			fmt.Printf("Failed to trim %s: %v\n", key, err)
			continue
		}
		fmt.Printf("Trimmed %s (%d removed)\n", key, out.Removed)
	}
	fmt.Println("\nPrune complete!")
}
