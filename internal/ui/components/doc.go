// Package components provides a declarative, theme-aware UI component library for terminal applications.
//
// # Overview
//
// Components are small builders that render to strings through lipgloss.
// Higher-level components describe themselves as a Div fragment; the Div is
// the box model everything bottoms out in.
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	theme := components.DefaultTheme()
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := component.ViewWithContext(ctx)
//
// Every color slot has a ColorToken name, so themes can be overridden from
// configuration:
//
//	theme = theme.WithColor(components.TokenElevatedSurface, lipgloss.AdaptiveColor{Light: "#fff", Dark: "#222"})
//
// # Elements
//
// An Element renders to a *Div once per frame:
//
//	fragment := components.NewIconButton(components.IconStar).
//		Variant(components.ButtonVariantFilled).
//		Render(ctx)
//
// Containers implement ParentElement and accept children in order:
//
//	toast := components.WithChildren(components.NewToast(components.ToastOriginBottom),
//		components.NewLabel("Saved"),
//	)
//
// # Pseudo-states
//
// A Div may register hover and active fills. The host reports which element
// is hovered or pressed through RenderContext.Interaction, keyed by element
// ID; the fill is picked at render time.
//
// # Positioning
//
// Absolute Divs (such as a toast's panel) are taken out of flow by a
// Viewport, which composites them over in-flow content by z-index:
//
//	ctx = ctx.WithViewport(80, 24)
//	screen := components.NewViewport(body, toast).ViewWithContext(ctx)
package components
