// Package noted is the composition root for a small file-backed note store.
//
// Each note is a plain UTF-8 text file named "<title>.txt" inside a notes root
// directory. The title is the note's identity: two notes cannot share one, and
// the file system's existence check is what enforces it. There is no metadata,
// no cache and no update operation; the directory is the single source of truth.
//
// The store exposes four operations, each in two flavours:
//
//   - typed: ListNotes, CreateNote, GetNote, DeleteNote return *core.Error values
//     whose Kind tells NotFound, AlreadyExists, IOFailure and InvalidInput apart;
//   - lenient: Titles, Create, Delete, Read never fail the caller. They log the
//     failure and return an empty list, false, or core.ReadErrorText.
//
// Usage:
//
//	svc, err := noted.New("./notes", noted.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	svc.Create(ctx, "todo", "buy milk")
//	fmt.Println(svc.Read(ctx, "todo"))
package noted
