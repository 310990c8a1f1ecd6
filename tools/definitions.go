package tools

// AllTools contains all tool specifications for the ProPresenter MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments
// - RETURNS: What the tool returns
//
// All tools return ProPresenter's JSON response verbatim on success, or
// {"status": "error", "message": ..., "status_code": ...} on failure.
var AllTools = []ToolSpec{
	// ==========================================================================
	// PRESENTATION TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_get_active_presentation",
		Method:   "GetActivePresentation",
		Title:    "Get Active Presentation",
		Category: "presentation",
		Description: `Get details of the presentation currently active in ProPresenter.

USE WHEN: User asks "what's currently showing", "which presentation is up", "what song are we on".

NOT FOR: Finding the current slide position (use propresenter_get_slide_index).

RETURNS: The active presentation's identifier, name, and metadata.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_get_slide_index",
		Method:   "GetSlideIndex",
		Title:    "Get Slide Index",
		Category: "presentation",
		Description: `Get the zero-based index of the slide currently being presented.

USE WHEN: User asks "which slide are we on", "what's the current slide number".

RETURNS: The presentation index of the current slide.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_trigger_slide",
		Method:   "TriggerSlide",
		Title:    "Trigger Slide",
		Category: "presentation",
		Description: `Show a specific slide of the active presentation.

USE WHEN: User says "go to slide 3", "show the first slide", "jump to the chorus slide" (after finding its index).

NOT FOR: Moving one slide forward or back (use propresenter_next_slide / propresenter_previous_slide).

PARAMETERS:
- index: Zero-based slide index (required). "Slide 1" is index 0.`,
		Idempotent: true,
	},
	{
		Name:     "propresenter_next_slide",
		Method:   "NextSlide",
		Title:    "Next Slide",
		Category: "presentation",
		Description: `Advance the active presentation to the next slide.

USE WHEN: User says "next slide", "advance", "go forward".`,
	},
	{
		Name:     "propresenter_previous_slide",
		Method:   "PreviousSlide",
		Title:    "Previous Slide",
		Category: "presentation",
		Description: `Move the active presentation back one slide.

USE WHEN: User says "previous slide", "go back", "back one".`,
	},
	{
		Name:     "propresenter_focus_active_presentation",
		Method:   "FocusActivePresentation",
		Title:    "Focus Active Presentation",
		Category: "presentation",
		Description: `Bring the active presentation into focus in the ProPresenter UI without triggering a slide.

USE WHEN: User says "focus the current presentation", "select the active presentation".

NOT FOR: Showing a slide (use propresenter_trigger_slide).`,
		Idempotent: true,
	},

	// ==========================================================================
	// LIBRARY TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_get_libraries",
		Method:   "GetLibraries",
		Title:    "List Libraries",
		Category: "libraries",
		Description: `List all presentation libraries configured in ProPresenter.

USE WHEN: User asks "what libraries exist", or you need a library UUID for propresenter_get_library_items.

RETURNS: Library names and UUIDs.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_get_library_items",
		Method:   "GetLibraryItems",
		Title:    "List Library Items",
		Category: "libraries",
		Description: `List the presentations stored in one library.

USE WHEN: User asks "what songs are in the Worship library", "list presentations in library X".

PARAMETERS:
- library_id: Library UUID from propresenter_get_libraries (required)

RETURNS: The library's presentations with names and UUIDs.`,
		ReadOnly:   true,
		Idempotent: true,
	},

	// ==========================================================================
	// PLAYLIST TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_get_playlists",
		Method:   "GetPlaylists",
		Title:    "List Playlists",
		Category: "playlists",
		Description: `List all playlists.

USE WHEN: User asks "what playlists are there", or you need a playlist UUID for other playlist tools.

RETURNS: Playlist names, UUIDs, and folder structure.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_get_active_playlist",
		Method:   "GetActivePlaylist",
		Title:    "Get Active Playlist",
		Category: "playlists",
		Description: `Get the playlist currently active in ProPresenter.

USE WHEN: User asks "which playlist are we in", "what's the current service order".

RETURNS: The active playlist and the focused item within it.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_get_playlist_items",
		Method:   "GetPlaylistItems",
		Title:    "List Playlist Items",
		Category: "playlists",
		Description: `List the items of one playlist in order.

USE WHEN: User asks "what's in the Sunday playlist", or you need an item index for propresenter_trigger_playlist_item.

PARAMETERS:
- playlist_id: Playlist UUID from propresenter_get_playlists (required)

RETURNS: The playlist's items with names, types, and positions.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_focus_playlist_item",
		Method:   "FocusPlaylistItem",
		Title:    "Focus Playlist Item",
		Category: "playlists",
		Description: `Select a playlist item in the ProPresenter UI without presenting it.

USE WHEN: User says "select the third item", "cue up the closing song" (preparing, not showing).

NOT FOR: Presenting an item (use propresenter_trigger_playlist_item).

PARAMETERS:
- playlist_id: Playlist UUID (required)
- index: Zero-based item position (required)`,
		Idempotent: true,
	},
	{
		Name:     "propresenter_trigger_playlist_item",
		Method:   "TriggerPlaylistItem",
		Title:    "Trigger Playlist Item",
		Category: "playlists",
		Description: `Present an item from a playlist.

USE WHEN: User says "play the second item", "start the opening song from the playlist".

PARAMETERS:
- playlist_id: Playlist UUID (required)
- index: Zero-based item position (required)`,
		Idempotent: true,
	},

	// ==========================================================================
	// LOOK TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_get_looks",
		Method:   "GetLooks",
		Title:    "List Looks",
		Category: "looks",
		Description: `List all saved looks (output presets).

USE WHEN: User asks "what looks are available", or you need a look UUID for propresenter_trigger_look.

RETURNS: Look names and UUIDs.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_get_current_look",
		Method:   "GetCurrentLook",
		Title:    "Get Current Look",
		Category: "looks",
		Description: `Get the look currently applied to the audience output.

USE WHEN: User asks "which look is active".`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_trigger_look",
		Method:   "TriggerLook",
		Title:    "Trigger Look",
		Category: "looks",
		Description: `Apply a saved look to the audience output.

USE WHEN: User says "switch to the stream look", "apply the lyrics-only look" (after finding its UUID).

PARAMETERS:
- look_id: Look UUID from propresenter_get_looks (required)`,
		Idempotent: true,
	},

	// ==========================================================================
	// MACRO TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_get_macros",
		Method:   "GetMacros",
		Title:    "List Macros",
		Category: "macros",
		Description: `List all macros.

USE WHEN: User asks "what macros exist", or you need a macro UUID for propresenter_trigger_macro.

RETURNS: Macro names and UUIDs.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_trigger_macro",
		Method:   "TriggerMacro",
		Title:    "Trigger Macro",
		Category: "macros",
		Description: `Run a macro by its UUID.

USE WHEN: You already have the macro's UUID from propresenter_get_macros.

NOT FOR: Triggering by display name (use propresenter_trigger_macro_by_name).

PARAMETERS:
- macro_id: Macro UUID (required)`,
	},
	{
		Name:     "propresenter_trigger_macro_by_name",
		Method:   "TriggerMacroByName",
		Title:    "Trigger Macro by Name",
		Category: "macros",
		Description: `Run a macro by its exact display name. Lists all macros, finds the first whose name matches exactly (case-sensitive), and triggers it.

USE WHEN: User says "run the Walk In macro", "trigger the macro called Countdown".

NOT FOR: Triggering by UUID (use propresenter_trigger_macro).

PARAMETERS:
- name: Exact macro name, case-sensitive (required)

RETURNS: The trigger response, or a not-found error if no macro matches the name exactly.`,
	},

	// ==========================================================================
	// MESSAGE TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_get_messages",
		Method:   "GetMessages",
		Title:    "List Messages",
		Category: "messages",
		Description: `List all configured messages.

USE WHEN: User asks "what messages exist", or you need a message UUID for trigger/clear.

RETURNS: Message names and UUIDs.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_trigger_message",
		Method:   "TriggerMessage",
		Title:    "Trigger Message",
		Category: "messages",
		Description: `Show a message on the output.

USE WHEN: User says "show the nursery message", "display the parking announcement".

PARAMETERS:
- message_id: Message UUID from propresenter_get_messages (required)`,
		Idempotent: true,
	},
	{
		Name:     "propresenter_clear_message",
		Method:   "ClearMessage",
		Title:    "Clear Message",
		Category: "messages",
		Description: `Remove a message from the output.

USE WHEN: User says "hide the message", "take down the announcement".

PARAMETERS:
- message_id: Message UUID (required)`,
		Destructive: true,
		Idempotent:  true,
	},

	// ==========================================================================
	// PROP TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_get_props",
		Method:   "GetProps",
		Title:    "List Props",
		Category: "props",
		Description: `List all props.

USE WHEN: User asks "what props exist", or you need a prop UUID for trigger/clear.

RETURNS: Prop names and UUIDs.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_trigger_prop",
		Method:   "TriggerProp",
		Title:    "Trigger Prop",
		Category: "props",
		Description: `Show a prop on the output.

USE WHEN: User says "show the logo prop", "put up the lower third".

PARAMETERS:
- prop_id: Prop UUID from propresenter_get_props (required)`,
		Idempotent: true,
	},
	{
		Name:     "propresenter_clear_prop",
		Method:   "ClearProp",
		Title:    "Clear Prop",
		Category: "props",
		Description: `Remove a prop from the output.

USE WHEN: User says "hide the prop", "remove the lower third".

PARAMETERS:
- prop_id: Prop UUID (required)`,
		Destructive: true,
		Idempotent:  true,
	},

	// ==========================================================================
	// TIMER TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_get_timers",
		Method:   "GetTimers",
		Title:    "List Timers",
		Category: "timers",
		Description: `List all timers with their current state.

USE WHEN: User asks "what timers exist", "how much time is left", or you need a timer UUID.

RETURNS: Timer names, UUIDs, configurations, and running state.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_start_timer",
		Method:   "StartTimer",
		Title:    "Start Timer",
		Category: "timers",
		Description: `Start a timer.

USE WHEN: User says "start the countdown", "start the sermon timer".

PARAMETERS:
- timer_id: Timer UUID from propresenter_get_timers (required)`,
		Idempotent: true,
	},
	{
		Name:     "propresenter_stop_timer",
		Method:   "StopTimer",
		Title:    "Stop Timer",
		Category: "timers",
		Description: `Stop a running timer.

USE WHEN: User says "stop the countdown", "pause the timer".

PARAMETERS:
- timer_id: Timer UUID (required)`,
		Idempotent: true,
	},
	{
		Name:     "propresenter_reset_timer",
		Method:   "ResetTimer",
		Title:    "Reset Timer",
		Category: "timers",
		Description: `Reset a timer to its configured starting value.

USE WHEN: User says "reset the countdown", "start the timer over" (reset then start).

PARAMETERS:
- timer_id: Timer UUID (required)`,
		Idempotent: true,
	},

	// ==========================================================================
	// AUDIO TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_get_audio_playlists",
		Method:   "GetAudioPlaylists",
		Title:    "List Audio Playlists",
		Category: "audio",
		Description: `List all audio playlists.

USE WHEN: User asks "what audio playlists exist", or you need an audio playlist UUID.

NOT FOR: Presentation playlists (use propresenter_get_playlists).

RETURNS: Audio playlist names and UUIDs.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_get_audio_playlist_items",
		Method:   "GetAudioPlaylistItems",
		Title:    "List Audio Playlist Items",
		Category: "audio",
		Description: `List the tracks of one audio playlist.

USE WHEN: User asks "what songs are in the walk-in music playlist".

PARAMETERS:
- playlist_id: Audio playlist UUID from propresenter_get_audio_playlists (required)

RETURNS: The playlist's audio items.`,
		ReadOnly:   true,
		Idempotent: true,
	},

	// ==========================================================================
	// CLEAR TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_clear_all",
		Method:   "ClearAll",
		Title:    "Clear All Layers",
		Category: "clear",
		Description: `Clear every presentation layer at once (slides, media, props, messages, audio).

USE WHEN: User says "clear everything", "blank the screen", "clear all".

NOT FOR: Clearing a single layer (use propresenter_clear_layer).`,
		Destructive: true,
		Idempotent:  true,
	},
	{
		Name:     "propresenter_clear_layer",
		Method:   "ClearLayer",
		Title:    "Clear Layer",
		Category: "clear",
		Description: `Clear one presentation layer.

USE WHEN: User says "clear the slides", "stop the background video", "kill the audio".

PARAMETERS:
- layer: One of audio, props, messages, announcements, slide, media, video_input (required)`,
		Destructive: true,
		Idempotent:  true,
	},
	{
		Name:     "propresenter_get_clear_groups",
		Method:   "GetClearGroups",
		Title:    "List Clear Groups",
		Category: "clear",
		Description: `List all clear groups (saved combinations of layers to clear together).

USE WHEN: User asks "what clear groups exist", or you need a clear group UUID.

RETURNS: Clear group names and UUIDs.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_trigger_clear_group",
		Method:   "TriggerClearGroup",
		Title:    "Trigger Clear Group",
		Category: "clear",
		Description: `Trigger a clear group.

USE WHEN: User says "run the end-of-song clear", "trigger the clear group".

PARAMETERS:
- group_id: Clear group UUID from propresenter_get_clear_groups (required)`,
		Destructive: true,
		Idempotent:  true,
	},

	// ==========================================================================
	// STAGE DISPLAY TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_get_stage_layouts",
		Method:   "GetStageLayouts",
		Title:    "List Stage Layouts",
		Category: "stage",
		Description: `List all stage display layouts.

USE WHEN: User asks "what stage layouts exist", or you need a layout UUID for propresenter_set_stage_layout.

RETURNS: Stage layout names and UUIDs.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_get_active_stage_layout",
		Method:   "GetActiveStageLayout",
		Title:    "Get Active Stage Layout",
		Category: "stage",
		Description: `Get the stage layout currently shown on the stage screens.

USE WHEN: User asks "which stage layout is up".`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_set_stage_layout",
		Method:   "SetStageLayout",
		Title:    "Set Stage Layout",
		Category: "stage",
		Description: `Make a stage layout active on the stage screens. This changes what the people on stage see.

USE WHEN: User says "switch the stage display to lyrics", "change the confidence monitor layout".

PARAMETERS:
- layout_id: Stage layout UUID from propresenter_get_stage_layouts (required)`,
		Idempotent: true,
	},

	// ==========================================================================
	// THEME TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_get_themes",
		Method:   "GetThemes",
		Title:    "List Themes",
		Category: "themes",
		Description: `List all slide themes.

USE WHEN: User asks "what themes exist", or you need a theme UUID for propresenter_get_theme.

RETURNS: Theme names and UUIDs.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_get_theme",
		Method:   "GetTheme",
		Title:    "Get Theme",
		Category: "themes",
		Description: `Get one theme and its slide templates.

USE WHEN: User asks about a specific theme's slides or templates.

PARAMETERS:
- theme_id: Theme UUID from propresenter_get_themes (required)`,
		ReadOnly:   true,
		Idempotent: true,
	},

	// ==========================================================================
	// VIDEO INPUT TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_get_video_inputs",
		Method:   "GetVideoInputs",
		Title:    "List Video Inputs",
		Category: "video_inputs",
		Description: `List all configured video inputs (cameras, capture devices).

USE WHEN: User asks "what video inputs exist", or you need an input's position for propresenter_trigger_video_input.

RETURNS: Video inputs in order; the position in this list is the trigger index.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "propresenter_trigger_video_input",
		Method:   "TriggerVideoInput",
		Title:    "Trigger Video Input",
		Category: "video_inputs",
		Description: `Show a video input on the output.

USE WHEN: User says "switch to the camera", "show video input 2".

PARAMETERS:
- index: Zero-based position from propresenter_get_video_inputs (required)`,
		Idempotent: true,
	},

	// ==========================================================================
	// UTILITY TOOLS
	// ==========================================================================
	{
		Name:     "propresenter_find_my_mouse",
		Method:   "FindMyMouse",
		Title:    "Find My Mouse",
		Category: "utility",
		Description: `Highlight the mouse cursor on the machine running ProPresenter.

USE WHEN: User says "where's my mouse", "highlight the cursor".`,
		Idempotent: true,
	},
}

// ToolsByCategory returns the tool specs in the given category.
func ToolsByCategory(category string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			specs = append(specs, spec)
		}
	}
	return specs
}
