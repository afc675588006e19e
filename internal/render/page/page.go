package page

// Link is a resolved hyperlink discovered while flattening a document.
type Link struct {
	Target string
	Label  string
}

// Links is the link table of one page, indexed by discovery order.
type Links []Link

func (l Links) Get(i int) (Link, bool) {
	if i < 0 || i >= len(l) {
		return Link{}, false
	}
	return l[i], true
}

// Line is one renderable record: plain text, or the label of a link.
type Line struct {
	Text string
	// link holds index+1 so the zero value is a plain line.
	link int
}

func PlainLine(text string) Line {
	return Line{Text: text}
}

func (l Line) LinkIndex() (int, bool) {
	if l.link == 0 {
		return -1, false
	}
	return l.link - 1, true
}

func (l Line) IsLink() bool {
	return l.link != 0
}

func (l *Links) add(target, label string) Line {
	*l = append(*l, Link{Target: target, Label: label})
	return Line{Text: label, link: len(*l)}
}
