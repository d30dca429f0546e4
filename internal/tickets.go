package internal

import "context"

// FetchTickets loads the full ticket list through the local cache. A
// valid cache serves the snapshot directly; otherwise the list is
// fetched from the API and the snapshot refreshed. Cache failures are
// logged and fall through to the network.
func FetchTickets(ctx context.Context, client *Client, cm *CacheManager, noCache bool) ([]Ticket, error) {
	if cm != nil && !noCache {
		valid, err := cm.IsValid(client.BaseURL())
		if err != nil {
			LogWarn("Cache check failed: %v", err)
		} else if valid {
			tickets, err := cm.LoadTickets()
			if err == nil {
				LogDebug("Loaded %d ticket(s) from cache", len(tickets))
				return tickets, nil
			}
			LogWarn("Failed to load cache: %v, fetching from API", err)
		}
	}

	tickets, err := client.Tickets(ctx, "")
	if err != nil {
		return nil, err
	}

	if cm != nil {
		if err := cm.SaveTickets(tickets, client.BaseURL()); err != nil {
			LogWarn("Failed to save cache: %v", err)
		}
	}
	return tickets, nil
}
