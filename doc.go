// Package solrkit provides a Go client for Solr-style document search
// engines: indexing, deletion and querying over HTTP with typed decoding
// of the engine's JSON response envelopes.
//
// Documents are schema-less: an ordered sequence of named scalar values,
// with duplicate names preserved for multi-valued fields.
//
//	client, _ := solrkit.New("http://localhost:8983/solr/test/")
//	defer client.Close()
//
//	var doc solrkit.Document
//	doc.AddField("id", solrkit.String("1"))
//	doc.AddField("city", solrkit.String("London"))
//	_, _ = client.AddAndCommit(ctx, doc)
//
//	res, _ := client.Query(ctx, solrkit.NewQuery("*:*").Rows(10))
//	for _, d := range res.Documents {
//	    city, _ := d.Get("city")
//	    fmt.Println(city.Interface())
//	}
//
// Every failure is returned as a *solrkit.Error wrapping one of the
// sentinel kinds (ErrTransport, ErrServer, ErrMalformedResponse,
// ErrParse); check with errors.Is. The client is stateless and safe for
// concurrent use.
package solrkit
