package meta

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed data/html.json
var builtinJSON []byte

var (
	builtinOnce sync.Once
	builtinDB   *DB
)

// Builtin returns the embedded HTML schema database. The dataset is parsed
// on first use and shared for the lifetime of the process.
func Builtin() *DB {
	builtinOnce.Do(func() {
		db, err := LoadJSON(bytes.NewReader(builtinJSON))
		if err != nil {
			panic(fmt.Sprintf("meta: embedded dataset is invalid: %v", err))
		}
		builtinDB = db
	})
	return builtinDB
}

func builtin(tag string) *Element {
	e, err := Builtin().Lookup(tag)
	if err != nil {
		panic(fmt.Sprintf("meta: builtin tag %q missing from embedded dataset", tag))
	}
	return e
}

// Per-tag entries from the builtin database, for use with the arena
// construction API. Resolved once at package init.
var (
	Html     = builtin("html")
	Head     = builtin("head")
	Title    = builtin("title")
	Base     = builtin("base")
	Link     = builtin("link")
	Meta     = builtin("meta")
	Style    = builtin("style")
	Script   = builtin("script")
	Noscript = builtin("noscript")
	Template = builtin("template")
	Body     = builtin("body")

	Article = builtin("article")
	Section = builtin("section")
	Nav     = builtin("nav")
	Aside   = builtin("aside")
	H1      = builtin("h1")
	H2      = builtin("h2")
	H3      = builtin("h3")
	H4      = builtin("h4")
	H5      = builtin("h5")
	H6      = builtin("h6")
	Hgroup  = builtin("hgroup")
	Header  = builtin("header")
	Footer  = builtin("footer")
	Address = builtin("address")
	Main    = builtin("main")

	P          = builtin("p")
	Hr         = builtin("hr")
	Pre        = builtin("pre")
	Blockquote = builtin("blockquote")
	Ol         = builtin("ol")
	Ul         = builtin("ul")
	Menu       = builtin("menu")
	Li         = builtin("li")
	Dl         = builtin("dl")
	Dt         = builtin("dt")
	Dd         = builtin("dd")
	Figure     = builtin("figure")
	Figcaption = builtin("figcaption")
	Div        = builtin("div")

	A      = builtin("a")
	Em     = builtin("em")
	Strong = builtin("strong")
	Small  = builtin("small")
	S      = builtin("s")
	Cite   = builtin("cite")
	Q      = builtin("q")
	Dfn    = builtin("dfn")
	Abbr   = builtin("abbr")
	Data   = builtin("data")
	Time   = builtin("time")
	Code   = builtin("code")
	Var    = builtin("var")
	Samp   = builtin("samp")
	Kbd    = builtin("kbd")
	Sub    = builtin("sub")
	Sup    = builtin("sup")
	I      = builtin("i")
	B      = builtin("b")
	U      = builtin("u")
	Mark   = builtin("mark")
	Bdi    = builtin("bdi")
	Bdo    = builtin("bdo")
	Span   = builtin("span")
	Br     = builtin("br")
	Wbr    = builtin("wbr")
	Ins    = builtin("ins")
	Del    = builtin("del")

	Img     = builtin("img")
	Iframe  = builtin("iframe")
	Picture = builtin("picture")
	Source  = builtin("source")
	Video   = builtin("video")
	Audio   = builtin("audio")
	Track   = builtin("track")
	Map     = builtin("map")
	Area    = builtin("area")
	Embed   = builtin("embed")
	Object  = builtin("object")
	Canvas  = builtin("canvas")

	Table    = builtin("table")
	Caption  = builtin("caption")
	Colgroup = builtin("colgroup")
	Col      = builtin("col")
	Tbody    = builtin("tbody")
	Thead    = builtin("thead")
	Tfoot    = builtin("tfoot")
	Tr       = builtin("tr")
	Td       = builtin("td")
	Th       = builtin("th")

	Form     = builtin("form")
	Label    = builtin("label")
	Input    = builtin("input")
	Button   = builtin("button")
	Select   = builtin("select")
	Datalist = builtin("datalist")
	Optgroup = builtin("optgroup")
	Option   = builtin("option")
	Textarea = builtin("textarea")
	Output   = builtin("output")
	Progress = builtin("progress")
	Meter    = builtin("meter")
	Fieldset = builtin("fieldset")
	Legend   = builtin("legend")

	Details = builtin("details")
	Summary = builtin("summary")
	Dialog  = builtin("dialog")
)
