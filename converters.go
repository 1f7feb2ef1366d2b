package solrkit

import "github.com/kailas-cloud/solrkit/internal/domain"

// Converters between the public types and the internal domain model.

func toDomainValue(v Value) domain.Value {
	switch v.Kind() {
	case KindInt:
		i, _ := v.Int64()
		return domain.Int64(i)
	case KindUint:
		u, _ := v.Uint64()
		return domain.Uint64(u)
	case KindFloat:
		f, _ := v.Float64()
		return domain.Float64(f)
	case KindString:
		s, _ := v.Str()
		return domain.String(s)
	case KindBool:
		b, _ := v.Bool()
		return domain.Bool(b)
	default:
		return domain.Null()
	}
}

func fromDomainValue(v domain.Value) Value {
	switch v.Kind() {
	case domain.KindInt:
		i, _ := v.Int64()
		return Int64(i)
	case domain.KindUint:
		u, _ := v.Uint64()
		return Uint64(u)
	case domain.KindFloat:
		f, _ := v.Float64()
		return Float64(f)
	case domain.KindString:
		s, _ := v.Str()
		return String(s)
	case domain.KindBool:
		b, _ := v.Bool()
		return Bool(b)
	default:
		return Null()
	}
}

func toDomainDocument(d Document) domain.Document {
	var out domain.Document
	for _, f := range d.Fields() {
		out.AddField(f.Name, toDomainValue(f.Value))
	}
	return out
}

func fromDomainDocument(d domain.Document) Document {
	var out Document
	for _, f := range d.Fields() {
		out.AddField(f.Name, fromDomainValue(f.Value))
	}
	return out
}

func toDomainDocuments(docs []Document) []domain.Document {
	out := make([]domain.Document, len(docs))
	for i, d := range docs {
		out[i] = toDomainDocument(d)
	}
	return out
}

func fromUpdateResponse(r domain.UpdateResponse) UpdateResult {
	return UpdateResult{Status: r.Status, Time: r.Time}
}

func fromQueryResponse(r domain.QueryResponse) QueryResult {
	docs := make([]Document, len(r.Docs))
	for i, d := range r.Docs {
		docs[i] = fromDomainDocument(d)
	}
	return QueryResult{
		Status:    r.Status,
		Time:      r.Time,
		Total:     r.Total,
		Start:     r.Start,
		Documents: docs,
	}
}
