package views

// galleryTemplates holds every fragment as a named html/template. The shell
// embeds "list", "list" embeds "item" and "indicator".
const galleryTemplates = `
{{define "shell"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.StylesheetURL}}">
</head>
<body class="max-w-7xl m-auto px-8 lg:px-12 pb-12 pt-20 bg-gray-200 font-poppins">
  <main class="w-full flex flex-col items-center gap-2 lg:gap-4 space-y-10">
    <h1 class="text-5xl tracking-wide font-semibold">{{.Title}}</h1>
    {{if .Intro}}<section class="prose max-w-none">{{.Intro}}</section>{{end}}
    <ul id="images" class="w-full grid grid-cols-2 md:grid-cols-3 lg:grid-cols-4 gap-3">
      {{template "list" .}}
    </ul>
  </main>
  <script src="{{.HTMXURL}}"></script>
</body>
</html>
{{end}}

{{define "list"}}{{range pageSlots}}{{template "item" nextItem}}{{end}}
<li id="indicator-container"
    class="w-auto h-auto overflow-hidden flex rounded-xl mt-4 col-span-full justify-center"
    hx-trigger="intersect delay:0.75s"
    hx-get="{{morePath}}"
    hx-target="this"
    hx-swap="outerHTML">
  {{template "indicator"}}
</li>
{{end}}

{{define "item"}}
<li tabindex="1"
    class="w-auto h-auto overflow-hidden flex rounded-xl shadow-md bg-gray-100 group cursor-pointer outline-none hover:ring-2 hover:ring-neutral-400 hover:ring-offset-2 focus:ring-2 focus:ring-neutral-400 focus:ring-offset-2"
    hx-trigger="click, keyup[key=='Enter']"
    hx-get="{{.OpenURL}}"
    hx-target="body"
    hx-swap="beforeend">
  <img class="w-full h-full object-cover aspect-square transition duration-[2s] group-hover:scale-110 group-focus:scale-110" src="{{.Src}}" alt="">
</li>
{{end}}

{{define "modal"}}
<div class="fixed w-full h-full top-0 left-0 overflow-hidden" hx-target="this" hx-swap="outerHTML">
  <div class="modal-backdrop w-full h-full bg-gray-800 opacity-75" hx-on="click: this.parentElement.outerHTML = ''"></div>

  {{if .PrevURL}}<button class="modal-prev fixed text-2xl top-1/2 -translate-y-1/2 left-10 cursor-pointer text-white p-2 aspect-square rounded-full ring-1 ring-gray-50 active:bg-gray-500"
      hx-trigger="click"
      hx-get="{{.PrevURL}}">
    <svg fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" class="w-6 h-6">
      <path stroke-linecap="round" stroke-linejoin="round" d="M15.75 19.5L8.25 12l7.5-7.5" />
    </svg>
  </button>{{end}}

  {{if .NextURL}}<button class="modal-next fixed text-2xl top-1/2 -translate-y-1/2 right-10 cursor-pointer text-white p-2 aspect-square rounded-full ring-1 ring-gray-50 active:bg-gray-500"
      hx-trigger="click"
      hx-get="{{.NextURL}}">
    <svg fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" class="w-6 h-6">
      <path stroke-linecap="round" stroke-linejoin="round" d="M8.25 4.5l7.5 7.5-7.5 7.5" />
    </svg>
  </button>{{end}}

  <div id="{{.ContentID}}"
      class="fixed top-1/2 left-1/2 -translate-x-1/2 -translate-y-1/2 w-4/5 lg:w-1/2 max-w-3xl aspect-square rounded-md shadow-md overflow-hidden outline-none"
      tabindex="1"
      autofocus>
    <img class="w-full h-full object-cover aspect-square" src="{{.Src}}" alt="">
  </div>

  <button class="modal-close fixed top-6 right-6 rounded-full bg-white shadow-xl w-8 h-8 flex items-center justify-center font-light text-xl text-neutral-700 cursor-pointer"
      hx-on="click: this.parentElement.outerHTML = ''">
    <svg fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" class="w-6 h-6">
      <path stroke-linecap="round" stroke-linejoin="round" d="M6 18L18 6M6 6l12 12" />
    </svg>
  </button>
</div>
{{end}}

{{define "indicator"}}<div class="indicator text-3xl">
    <span class="inline-block animate-bounce">.</span>
    <span class="inline-block animate-bounce">.</span>
    <span class="inline-block animate-bounce">.</span>
  </div>{{end}}

{{define "error"}}<div class="gallery-error" role="alert">
  <p>{{.Message}}</p>
  <small>ref {{.Ref}}</small>
</div>
{{end}}
`
