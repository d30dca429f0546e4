package testutil

// Canned API payloads shared across tests.

// StatsJSON is a sample /admin/stats response
const StatsJSON = `{
	"total_escalated_tickets": 12,
	"pending_tickets": 5,
	"resolved_tickets": 7,
	"resolution_rate": 58.3
}`

// TicketJSON is a sample single-ticket response with a comment thread
const TicketJSON = `{
	"id": "TICKET-001",
	"status": "pending",
	"user_query": "My brakes squeak when stopping",
	"ai_answer": "Replace brake pads",
	"user_feedback": "Still squeaks after replacement",
	"submitted_at": "2026-08-20T10:30:00Z",
	"comments": [
		{
			"id": "c1",
			"author": "admin",
			"author_name": "Support Admin",
			"content": "Looking into this",
			"timestamp": "2026-08-20T11:00:00Z"
		}
	],
	"conversation_history": [
		{"role": "user", "content": "My brakes squeak when stopping"},
		{"role": "assistant", "content": "Replace brake pads"}
	]
}`

// TicketListJSON is a sample /admin/tickets response with both statuses
const TicketListJSON = `[
	{
		"id": "TICKET-001",
		"status": "pending",
		"user_query": "My brakes squeak when stopping",
		"ai_answer": "Replace brake pads",
		"user_feedback": "Still squeaks after replacement",
		"submitted_at": "2026-08-20T10:30:00Z"
	},
	{
		"id": "TICKET-002",
		"status": "resolved",
		"user_query": "Engine warning light is on",
		"ai_answer": "Check the oil level",
		"user_feedback": "Light stays on after topping up",
		"admin_solution": "Faulty oil pressure sensor, replaced under warranty",
		"submitted_at": "2026-08-18T09:00:00Z",
		"resolved_at": "2026-08-19T14:20:00Z",
		"resolved_by": "admin"
	}
]`

// SearchResponseJSON is a sample POST /search response
const SearchResponseJSON = `{
	"answer": "Replace brake pads",
	"relevant_tickets": [
		{
			"ticket_id": "TICKET-001",
			"problem": "Brakes squeak when stopping",
			"resolution": "New brake pads fitted",
			"category": "brakes",
			"distance": 0.12
		}
	]
}`

// EscalateResponseJSON is a sample POST /escalate acknowledgement
const EscalateResponseJSON = `{"ticket_id": "T-100", "message": "Ticket created"}`

// QuickSearchResponseJSON is a sample GET /search?query= response
const QuickSearchResponseJSON = `{
	"results": [
		{"content": "Problem: My brakes squeak when stopping Resolution: Replace brake pads"}
	]
}`
