package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
)

func (that *UI) draw() {
	that.screen.Clear()

	w, h := that.screen.Size()
	session := that.controller.Session()
	ox, oy := boardOrigin(w, h)

	for index := 0; index < entity.BoardSize; index++ {
		x := ox + entity.Col(index)*(cellW+gap)
		y := oy + entity.Row(index)*(cellH+gap)

		frame := styleCell
		if that.isOnLine(index) {
			frame = styleHighlight
		}
		drawBox(that.screen, x, y, cellW, cellH, frame)

		if mark := session.Board[index]; mark.IsPlayer() {
			style := that.markStyle(index)
			for i, row := range glyphs[mark] {
				drawText(that.screen, x+(cellW-len(row))/2, y+1+i, row, style)
			}
		}
	}

	if session.Overlay == entity.OverlayNone {
		drawText(that.screen, ox, oy-2, "turn: "+string(session.Turn), styleBase)
	} else {
		that.drawMenu(w, h, session)
	}

	that.screen.Show()
}

func (that *UI) isOnLine(index int) bool {
	if !that.hasLine {
		return false
	}
	for _, cell := range that.line {
		if cell == index {
			return true
		}
	}
	return false
}

func (that *UI) drawMenu(w, h int, session *entity.Session) {
	mx, my := menuOrigin(w, h)

	for y := my; y < my+menuH; y++ {
		for x := mx; x < mx+menuW; x++ {
			that.screen.SetContent(x, y, ' ', nil, styleMenu)
		}
	}
	drawBox(that.screen, mx, my, menuW, menuH, styleMenu)

	title, button := session.Menu()
	drawText(that.screen, mx+(menuW-len(title))/2, my+2, title, styleMenu.Bold(true))

	label := "[ " + button + " ]"
	drawText(that.screen, mx+(menuW-len(label))/2, my+4, label, styleMenu)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawBox(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for i := x + 1; i < x+w-1; i++ {
		s.SetContent(i, y, tcell.RuneHLine, nil, style)
		s.SetContent(i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for j := y + 1; j < y+h-1; j++ {
		s.SetContent(x, j, tcell.RuneVLine, nil, style)
		s.SetContent(x+w-1, j, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}
