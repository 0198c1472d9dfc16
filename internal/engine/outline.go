package engine

import (
	"log"

	pdflib "github.com/ledongthuc/pdf"

	"docgrip/internal/domain"
)

// Walk limits. Outline trees are linked via First/Next pointers and a
// hostile file can make them cyclic; the caps bound the walk instead of
// tracking object identity, which the Value API does not expose.
const (
	maxOutlineNodes  = 8192
	maxOutlineDepth  = 64
	maxNameTreeDepth = 32
)

// readOutline walks the catalog's /Outlines tree and resolves each item
// to a 0-based page index. Items whose destination cannot be resolved
// get TargetPage = domain.NoTargetPage. A malformed outline aborts the
// walk and keeps whatever was read before the fault.
func readOutline(r *pdflib.Reader) (nodes []*domain.OutlineNode) {
	defer func() {
		if v := recover(); v != nil {
			log.Printf("Outline read aborted: %v", v)
		}
	}()

	outlines := r.Trailer().Key("Root").Key("Outlines")
	if outlines.IsNull() {
		return nil
	}

	res := &destResolver{r: r}
	count := 0
	return readSiblings(outlines.Key("First"), res, &count, 0)
}

func readSiblings(item pdflib.Value, res *destResolver, count *int, depth int) []*domain.OutlineNode {
	if depth > maxOutlineDepth {
		return nil
	}

	var out []*domain.OutlineNode
	for item.Kind() == pdflib.Dict {
		*count++
		if *count > maxOutlineNodes {
			break
		}

		node := &domain.OutlineNode{
			Title:      item.Key("Title").Text(),
			TargetPage: res.resolve(item),
		}
		node.Children = readSiblings(item.Key("First"), res, count, depth+1)
		out = append(out, node)

		item = item.Key("Next")
	}
	return out
}

// destResolver maps outline destinations to 0-based page indices. Page
// dictionaries come back from the Value API without object identity, so
// pages are matched by their formatted dictionary content, which is
// unique in practice (distinct /Contents streams).
type destResolver struct {
	r     *pdflib.Reader
	pages map[string]int // formatted page dict -> 0-based index
}

// resolve returns the 0-based target page of an outline item.
func (d *destResolver) resolve(item pdflib.Value) int {
	dest := item.Key("Dest")
	if dest.IsNull() {
		// PDF 1.1 items carry an action instead; only GoTo is a
		// same-document jump.
		action := item.Key("A")
		if action.Kind() == pdflib.Dict && action.Key("S").Name() == "GoTo" {
			dest = action.Key("D")
		}
	}

	switch dest.Kind() {
	case pdflib.Array:
	case pdflib.Name:
		dest = d.lookupNamed(dest.Name())
	case pdflib.String:
		dest = d.lookupNamed(dest.RawString())
	default:
		return domain.NoTargetPage
	}

	// Named destinations may be wrapped in a dict with a D entry.
	if dest.Kind() == pdflib.Dict {
		dest = dest.Key("D")
	}
	if dest.Kind() != pdflib.Array || dest.Len() == 0 {
		return domain.NoTargetPage
	}

	target := dest.Index(0)
	switch target.Kind() {
	case pdflib.Integer:
		// Remote go-to form: the first element is already a 0-based
		// page number.
		n := int(target.Int64())
		if n < 0 || n >= d.r.NumPage() {
			return domain.NoTargetPage
		}
		return n
	case pdflib.Dict:
		if d.pages == nil {
			d.buildPageIndex()
		}
		if n, ok := d.pages[target.String()]; ok {
			return n
		}
	}
	return domain.NoTargetPage
}

// lookupNamed resolves a named destination via the legacy /Dests dict
// or the /Names/Dests name tree.
func (d *destResolver) lookupNamed(name string) pdflib.Value {
	root := d.r.Trailer().Key("Root")
	if v := root.Key("Dests").Key(name); !v.IsNull() {
		return v
	}
	return lookupNameTree(root.Key("Names").Key("Dests"), name, 0)
}

func lookupNameTree(node pdflib.Value, name string, depth int) pdflib.Value {
	if depth > maxNameTreeDepth || node.IsNull() {
		return pdflib.Value{}
	}

	names := node.Key("Names")
	for i := 0; i+1 < names.Len(); i += 2 {
		if names.Index(i).RawString() == name {
			return names.Index(i + 1)
		}
	}

	kids := node.Key("Kids")
	for i := 0; i < kids.Len(); i++ {
		if v := lookupNameTree(kids.Index(i), name, depth+1); !v.IsNull() {
			return v
		}
	}
	return pdflib.Value{}
}

func (d *destResolver) buildPageIndex() {
	d.pages = make(map[string]int)
	for i := 1; i <= d.r.NumPage(); i++ {
		pg := d.r.Page(i)
		if pg.V.IsNull() {
			continue
		}
		d.pages[pg.V.String()] = i - 1
	}
}
