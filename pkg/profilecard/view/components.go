package view

import (
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/i18n"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"
)

// Sizes shared by both screens.
const (
	AppBarHeight      int32 = 64
	IconSize          int32 = 32
	IconPadding       int32 = 12
	ListAvatarSize    int32 = 72
	DetailAvatarSize  int32 = 240
	AvatarPadding     int32 = 16
	AvatarBorderWidth int32 = 2
	ContentPadding    int32 = 8
)

// CardPadding is the margin around each list card.
var CardPadding = Padding{Top: 8, Bottom: 4, Left: 16, Right: 16}

// Translator resolves message ids to display strings.
type Translator interface {
	T(id string) string
}

// StatusLabel returns "Active Now" or "Offline" in the catalog's language.
func StatusLabel(online bool, t Translator) string {
	if online {
		return t.T(i18n.StatusOnline)
	}
	return t.T(i18n.StatusOffline)
}

// Scaffold places a top bar above the content and fills the viewport.
func Scaffold(topBar, content *Node, th theme.Theme) *Node {
	return &Node{
		Kind:       KindScaffold,
		Background: th.BackgroundColor,
		Children:   []*Node{topBar, content},
	}
}

// AppBar is the top bar: a clickable navigation icon followed by the title.
func AppBar(title string, icon Icon, th theme.Theme, onIcon func()) *Node {
	return &Node{
		Kind:       KindAppBar,
		Background: th.AppBarColor,
		Children: []*Node{
			{
				Kind:       KindIcon,
				Icon:       icon,
				Size:       IconSize,
				Padding:    UniformPadding(IconPadding),
				Background: th.OnAppBarColor,
				OnClick:    onIcon,
			},
			{
				Kind:    KindText,
				Text:    title,
				Padding: Padding{Left: IconPadding},
				Style:   TextStyle{Scale: theme.ScaleTitleLarge, Color: th.OnAppBarColor},
			},
		},
	}
}

// ProfilePicture is a circular avatar bordered with the status color.
func ProfilePicture(pictureURL string, online bool, size int32, th theme.Theme) *Node {
	return &Node{
		Kind:        KindAvatar,
		ImageURL:    pictureURL,
		Size:        size,
		Border:      th.StatusColor(online),
		BorderWidth: AvatarBorderWidth,
		Background:  th.PlaceholderColor,
		Padding:     UniformPadding(AvatarPadding),
	}
}

// ProfileContent is the name and status block. Offline users get medium alpha text.
func ProfileContent(name string, online bool, align Align, t Translator, th theme.Theme) *Node {
	color := th.TextColor.WithAlpha(theme.StatusAlpha(online))
	return &Node{
		Kind:    KindColumn,
		Align:   align,
		Padding: UniformPadding(ContentPadding),
		Children: []*Node{
			{
				Kind:  KindText,
				Text:  name,
				Style: TextStyle{Scale: theme.ScaleLabelLarge, Color: color},
			},
			{
				Kind:  KindText,
				Text:  StatusLabel(online, t),
				Style: TextStyle{Scale: theme.ScaleBodyMedium, Color: color},
			},
		},
	}
}

// ProfileCard is one list entry: avatar and content in a row inside a card.
func ProfileCard(name, pictureURL string, online, focused bool, t Translator, th theme.Theme, onClick func()) *Node {
	background := th.SurfaceColor
	if focused {
		background = th.HighlightColor
	}
	return &Node{
		Kind:       KindCard,
		Background: background,
		Padding:    CardPadding,
		Focused:    focused,
		OnClick:    onClick,
		Children: []*Node{
			{
				Kind: KindRow,
				Children: []*Node{
					ProfilePicture(pictureURL, online, ListAvatarSize, th),
					ProfileContent(name, online, AlignStart, t, th),
				},
			},
		},
	}
}
