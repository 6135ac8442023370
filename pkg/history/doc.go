// Package history keeps the recent messages of each conversation so prompts
// can include what was said before the current message.
//
// Two stores are provided: Memory for single-process deployments and tests,
// and Redis for shared state across instances. Both keep at most a fixed
// number of entries per conversation key, oldest first.
//
//	client, err := history.Open(ctx, os.Getenv("REDIS_URL"))
//	store := history.NewRedis(client, history.WithPrefix("convomail"))
//
//	_ = store.Append(ctx, roomID, history.Entry{ID: msg.ID, UserID: msg.UserID, Text: msg.Text})
//	recent, _ := store.Recent(ctx, roomID, 10)
package history
