package domain

// UpdateResponse is the outcome of an update request (add, commit, delete,
// rollback, optimize). Update requests return no document payload.
type UpdateResponse struct {
	// Status is the engine status from responseHeader.status.
	Status int
	// Time is the request execution time in milliseconds (QTime).
	Time int
}

// QueryResponse is one page of a select response. Docs holds only the
// returned page; Total counts every match on the server.
type QueryResponse struct {
	Status int
	Time   int
	// Total is the number of matching rows on the server (numFound).
	Total uint64
	// Start is the zero-based offset of this page.
	Start uint64
	// Docs is the page of matched documents, in server order.
	Docs []Document
}
