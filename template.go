package genicon

// SVGTemplate is the placeholder icon: a 1024x1024 rounded square with an
// indigo to violet diagonal gradient and a bold "RBI" monogram.
const SVGTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="1024" height="1024" viewBox="0 0 1024 1024" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="grad" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#4F46E5;stop-opacity:1" />
      <stop offset="100%" style="stop-color:#7C3AED;stop-opacity:1" />
    </linearGradient>
  </defs>
  <rect width="1024" height="1024" rx="180" fill="url(#grad)"/>
  <text x="512" y="640" font-family="Arial, sans-serif" font-size="400" font-weight="bold"
        text-anchor="middle" fill="white">RBI</text>
</svg>
`
