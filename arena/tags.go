package arena

import "github.com/grovekit/grove/meta"

// Per-tag builders over the builtin schema database. Each allocates one
// element via Element and is subject to the same validation. Generated to
// match the tags in meta/data/html.json.

// Html allocates a <html> element.
func (a *Arena) Html(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Html, attrs, children...)
}

// Head allocates a <head> element.
func (a *Arena) Head(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Head, attrs, children...)
}

// Title allocates a <title> element.
func (a *Arena) Title(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Title, attrs, children...)
}

// Base allocates a <base> element.
func (a *Arena) Base(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Base, attrs, children...)
}

// Link allocates a <link> element.
func (a *Arena) Link(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Link, attrs, children...)
}

// Meta allocates a <meta> element.
func (a *Arena) Meta(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Meta, attrs, children...)
}

// Style allocates a <style> element.
func (a *Arena) Style(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Style, attrs, children...)
}

// Script allocates a <script> element.
func (a *Arena) Script(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Script, attrs, children...)
}

// Noscript allocates a <noscript> element.
func (a *Arena) Noscript(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Noscript, attrs, children...)
}

// Template allocates a <template> element.
func (a *Arena) Template(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Template, attrs, children...)
}

// Body allocates a <body> element.
func (a *Arena) Body(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Body, attrs, children...)
}

// Article allocates an <article> element.
func (a *Arena) Article(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Article, attrs, children...)
}

// Section allocates a <section> element.
func (a *Arena) Section(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Section, attrs, children...)
}

// Nav allocates a <nav> element.
func (a *Arena) Nav(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Nav, attrs, children...)
}

// Aside allocates an <aside> element.
func (a *Arena) Aside(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Aside, attrs, children...)
}

// H1 allocates a <h1> element.
func (a *Arena) H1(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.H1, attrs, children...)
}

// H2 allocates a <h2> element.
func (a *Arena) H2(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.H2, attrs, children...)
}

// H3 allocates a <h3> element.
func (a *Arena) H3(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.H3, attrs, children...)
}

// H4 allocates a <h4> element.
func (a *Arena) H4(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.H4, attrs, children...)
}

// H5 allocates a <h5> element.
func (a *Arena) H5(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.H5, attrs, children...)
}

// H6 allocates a <h6> element.
func (a *Arena) H6(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.H6, attrs, children...)
}

// Hgroup allocates a <hgroup> element.
func (a *Arena) Hgroup(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Hgroup, attrs, children...)
}

// Header allocates a <header> element.
func (a *Arena) Header(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Header, attrs, children...)
}

// Footer allocates a <footer> element.
func (a *Arena) Footer(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Footer, attrs, children...)
}

// Address allocates an <address> element.
func (a *Arena) Address(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Address, attrs, children...)
}

// Main allocates a <main> element.
func (a *Arena) Main(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Main, attrs, children...)
}

// P allocates a <p> element.
func (a *Arena) P(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.P, attrs, children...)
}

// Hr allocates a <hr> element.
func (a *Arena) Hr(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Hr, attrs, children...)
}

// Pre allocates a <pre> element.
func (a *Arena) Pre(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Pre, attrs, children...)
}

// Blockquote allocates a <blockquote> element.
func (a *Arena) Blockquote(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Blockquote, attrs, children...)
}

// Ol allocates an <ol> element.
func (a *Arena) Ol(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Ol, attrs, children...)
}

// Ul allocates an <ul> element.
func (a *Arena) Ul(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Ul, attrs, children...)
}

// Menu allocates a <menu> element.
func (a *Arena) Menu(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Menu, attrs, children...)
}

// Li allocates a <li> element.
func (a *Arena) Li(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Li, attrs, children...)
}

// Dl allocates a <dl> element.
func (a *Arena) Dl(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Dl, attrs, children...)
}

// Dt allocates a <dt> element.
func (a *Arena) Dt(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Dt, attrs, children...)
}

// Dd allocates a <dd> element.
func (a *Arena) Dd(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Dd, attrs, children...)
}

// Figure allocates a <figure> element.
func (a *Arena) Figure(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Figure, attrs, children...)
}

// Figcaption allocates a <figcaption> element.
func (a *Arena) Figcaption(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Figcaption, attrs, children...)
}

// Div allocates a <div> element.
func (a *Arena) Div(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Div, attrs, children...)
}

// A allocates an <a> element.
func (a *Arena) A(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.A, attrs, children...)
}

// Em allocates an <em> element.
func (a *Arena) Em(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Em, attrs, children...)
}

// Strong allocates a <strong> element.
func (a *Arena) Strong(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Strong, attrs, children...)
}

// Small allocates a <small> element.
func (a *Arena) Small(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Small, attrs, children...)
}

// S allocates a <s> element.
func (a *Arena) S(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.S, attrs, children...)
}

// Cite allocates a <cite> element.
func (a *Arena) Cite(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Cite, attrs, children...)
}

// Dfn allocates a <dfn> element.
func (a *Arena) Dfn(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Dfn, attrs, children...)
}

// Abbr allocates an <abbr> element.
func (a *Arena) Abbr(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Abbr, attrs, children...)
}

// Code allocates a <code> element.
func (a *Arena) Code(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Code, attrs, children...)
}

// Var allocates a <var> element.
func (a *Arena) Var(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Var, attrs, children...)
}

// Samp allocates a <samp> element.
func (a *Arena) Samp(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Samp, attrs, children...)
}

// Kbd allocates a <kbd> element.
func (a *Arena) Kbd(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Kbd, attrs, children...)
}

// Sub allocates a <sub> element.
func (a *Arena) Sub(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Sub, attrs, children...)
}

// Sup allocates a <sup> element.
func (a *Arena) Sup(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Sup, attrs, children...)
}

// I allocates an <i> element.
func (a *Arena) I(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.I, attrs, children...)
}

// B allocates a <b> element.
func (a *Arena) B(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.B, attrs, children...)
}

// U allocates an <u> element.
func (a *Arena) U(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.U, attrs, children...)
}

// Mark allocates a <mark> element.
func (a *Arena) Mark(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Mark, attrs, children...)
}

// Bdi allocates a <bdi> element.
func (a *Arena) Bdi(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Bdi, attrs, children...)
}

// Span allocates a <span> element.
func (a *Arena) Span(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Span, attrs, children...)
}

// Q allocates a <q> element.
func (a *Arena) Q(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Q, attrs, children...)
}

// Data allocates a <data> element.
func (a *Arena) Data(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Data, attrs, children...)
}

// Time allocates a <time> element.
func (a *Arena) Time(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Time, attrs, children...)
}

// Bdo allocates a <bdo> element.
func (a *Arena) Bdo(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Bdo, attrs, children...)
}

// Br allocates a <br> element.
func (a *Arena) Br(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Br, attrs, children...)
}

// Wbr allocates a <wbr> element.
func (a *Arena) Wbr(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Wbr, attrs, children...)
}

// Ins allocates an <ins> element.
func (a *Arena) Ins(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Ins, attrs, children...)
}

// Del allocates a <del> element.
func (a *Arena) Del(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Del, attrs, children...)
}

// Img allocates an <img> element.
func (a *Arena) Img(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Img, attrs, children...)
}

// Iframe allocates an <iframe> element.
func (a *Arena) Iframe(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Iframe, attrs, children...)
}

// Picture allocates a <picture> element.
func (a *Arena) Picture(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Picture, attrs, children...)
}

// Source allocates a <source> element.
func (a *Arena) Source(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Source, attrs, children...)
}

// Video allocates a <video> element.
func (a *Arena) Video(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Video, attrs, children...)
}

// Audio allocates an <audio> element.
func (a *Arena) Audio(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Audio, attrs, children...)
}

// Track allocates a <track> element.
func (a *Arena) Track(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Track, attrs, children...)
}

// Map allocates a <map> element.
func (a *Arena) Map(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Map, attrs, children...)
}

// Area allocates an <area> element.
func (a *Arena) Area(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Area, attrs, children...)
}

// Embed allocates an <embed> element.
func (a *Arena) Embed(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Embed, attrs, children...)
}

// Object allocates an <object> element.
func (a *Arena) Object(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Object, attrs, children...)
}

// Canvas allocates a <canvas> element.
func (a *Arena) Canvas(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Canvas, attrs, children...)
}

// Table allocates a <table> element.
func (a *Arena) Table(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Table, attrs, children...)
}

// Caption allocates a <caption> element.
func (a *Arena) Caption(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Caption, attrs, children...)
}

// Colgroup allocates a <colgroup> element.
func (a *Arena) Colgroup(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Colgroup, attrs, children...)
}

// Col allocates a <col> element.
func (a *Arena) Col(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Col, attrs, children...)
}

// Tbody allocates a <tbody> element.
func (a *Arena) Tbody(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Tbody, attrs, children...)
}

// Thead allocates a <thead> element.
func (a *Arena) Thead(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Thead, attrs, children...)
}

// Tfoot allocates a <tfoot> element.
func (a *Arena) Tfoot(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Tfoot, attrs, children...)
}

// Tr allocates a <tr> element.
func (a *Arena) Tr(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Tr, attrs, children...)
}

// Td allocates a <td> element.
func (a *Arena) Td(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Td, attrs, children...)
}

// Th allocates a <th> element.
func (a *Arena) Th(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Th, attrs, children...)
}

// Form allocates a <form> element.
func (a *Arena) Form(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Form, attrs, children...)
}

// Label allocates a <label> element.
func (a *Arena) Label(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Label, attrs, children...)
}

// Input allocates an <input> element.
func (a *Arena) Input(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Input, attrs, children...)
}

// Button allocates a <button> element.
func (a *Arena) Button(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Button, attrs, children...)
}

// Select allocates a <select> element.
func (a *Arena) Select(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Select, attrs, children...)
}

// Datalist allocates a <datalist> element.
func (a *Arena) Datalist(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Datalist, attrs, children...)
}

// Optgroup allocates an <optgroup> element.
func (a *Arena) Optgroup(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Optgroup, attrs, children...)
}

// Option allocates an <option> element.
func (a *Arena) Option(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Option, attrs, children...)
}

// Textarea allocates a <textarea> element.
func (a *Arena) Textarea(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Textarea, attrs, children...)
}

// Output allocates an <output> element.
func (a *Arena) Output(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Output, attrs, children...)
}

// Progress allocates a <progress> element.
func (a *Arena) Progress(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Progress, attrs, children...)
}

// Meter allocates a <meter> element.
func (a *Arena) Meter(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Meter, attrs, children...)
}

// Fieldset allocates a <fieldset> element.
func (a *Arena) Fieldset(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Fieldset, attrs, children...)
}

// Legend allocates a <legend> element.
func (a *Arena) Legend(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Legend, attrs, children...)
}

// Details allocates a <details> element.
func (a *Arena) Details(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Details, attrs, children...)
}

// Summary allocates a <summary> element.
func (a *Arena) Summary(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Summary, attrs, children...)
}

// Dialog allocates a <dialog> element.
func (a *Arena) Dialog(attrs []Attr, children ...NodeRef) (NodeRef, error) {
	return a.Element(meta.Dialog, attrs, children...)
}
