package diagram

import "fmt"

// The templates are fixed-layout drawings; the truncated description is
// interpolated verbatim into the caption text node near the bottom of each
// one.

func renderTemplate(k kind, description string) string {
	switch k {
	case kindStructure:
		return fmt.Sprintf(structureSVG, description)
	case kindStateTree:
		return fmt.Sprintf(stateTreeSVG, description)
	case kindAnalogy:
		return fmt.Sprintf(analogySVG, description)
	default:
		return fmt.Sprintf(genericSVG, description)
	}
}

const structureSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="480" height="320" viewBox="0 0 480 320">
  <rect width="480" height="320" fill="#f8fafc"/>
  <text x="240" y="30" text-anchor="middle" font-family="monospace" font-size="16" fill="#0f172a">Project Structure</text>
  <rect x="40" y="50" width="120" height="36" rx="6" fill="#3b82f6"/>
  <text x="100" y="73" text-anchor="middle" font-family="monospace" font-size="12" fill="#ffffff">root/</text>
  <line x1="100" y1="86" x2="100" y2="260" stroke="#94a3b8" stroke-width="2"/>
  <line x1="100" y1="120" x2="160" y2="120" stroke="#94a3b8" stroke-width="2"/>
  <rect x="160" y="102" width="140" height="32" rx="6" fill="#60a5fa"/>
  <text x="230" y="123" text-anchor="middle" font-family="monospace" font-size="12" fill="#ffffff">src/</text>
  <line x1="100" y1="170" x2="160" y2="170" stroke="#94a3b8" stroke-width="2"/>
  <rect x="160" y="152" width="140" height="32" rx="6" fill="#60a5fa"/>
  <text x="230" y="173" text-anchor="middle" font-family="monospace" font-size="12" fill="#ffffff">components/</text>
  <line x1="100" y1="220" x2="160" y2="220" stroke="#94a3b8" stroke-width="2"/>
  <rect x="160" y="202" width="140" height="32" rx="6" fill="#93c5fd"/>
  <text x="230" y="223" text-anchor="middle" font-family="monospace" font-size="12" fill="#1e293b">config files</text>
  <line x1="100" y1="260" x2="160" y2="260" stroke="#94a3b8" stroke-width="2"/>
  <rect x="160" y="242" width="140" height="32" rx="6" fill="#93c5fd"/>
  <text x="230" y="263" text-anchor="middle" font-family="monospace" font-size="12" fill="#1e293b">tests/</text>
  <rect x="330" y="102" width="120" height="90" rx="6" fill="#e2e8f0"/>
  <text x="390" y="124" text-anchor="middle" font-family="monospace" font-size="11" fill="#334155">legend</text>
  <rect x="342" y="136" width="12" height="12" fill="#3b82f6"/>
  <text x="362" y="147" font-family="monospace" font-size="10" fill="#334155">directory</text>
  <rect x="342" y="158" width="12" height="12" fill="#93c5fd"/>
  <text x="362" y="169" font-family="monospace" font-size="10" fill="#334155">leaf entry</text>
  <text x="240" y="305" text-anchor="middle" font-family="monospace" font-size="11" fill="#64748b">%s</text>
</svg>`

const stateTreeSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="480" height="320" viewBox="0 0 480 320">
  <rect width="480" height="320" fill="#f8fafc"/>
  <text x="240" y="30" text-anchor="middle" font-family="monospace" font-size="16" fill="#0f172a">Data Flow &amp; State</text>
  <rect x="190" y="50" width="100" height="36" rx="18" fill="#8b5cf6"/>
  <text x="240" y="73" text-anchor="middle" font-family="monospace" font-size="12" fill="#ffffff">app state</text>
  <line x1="240" y1="86" x2="140" y2="140" stroke="#94a3b8" stroke-width="2"/>
  <line x1="240" y1="86" x2="340" y2="140" stroke="#94a3b8" stroke-width="2"/>
  <rect x="90" y="140" width="100" height="36" rx="18" fill="#a78bfa"/>
  <text x="140" y="163" text-anchor="middle" font-family="monospace" font-size="12" fill="#ffffff">view</text>
  <rect x="290" y="140" width="100" height="36" rx="18" fill="#a78bfa"/>
  <text x="340" y="163" text-anchor="middle" font-family="monospace" font-size="12" fill="#ffffff">store</text>
  <line x1="140" y1="176" x2="140" y2="230" stroke="#94a3b8" stroke-width="2"/>
  <line x1="340" y1="176" x2="340" y2="230" stroke="#94a3b8" stroke-width="2"/>
  <rect x="90" y="230" width="100" height="36" rx="18" fill="#c4b5fd"/>
  <text x="140" y="253" text-anchor="middle" font-family="monospace" font-size="12" fill="#1e293b">props down</text>
  <rect x="290" y="230" width="100" height="36" rx="18" fill="#c4b5fd"/>
  <text x="340" y="253" text-anchor="middle" font-family="monospace" font-size="12" fill="#1e293b">events up</text>
  <text x="240" y="305" text-anchor="middle" font-family="monospace" font-size="11" fill="#64748b">%s</text>
</svg>`

const analogySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="480" height="320" viewBox="0 0 480 320">
  <rect width="480" height="320" fill="#f8fafc"/>
  <text x="240" y="30" text-anchor="middle" font-family="monospace" font-size="16" fill="#0f172a">Concepts &amp; Analogies</text>
  <circle cx="160" cy="150" r="75" fill="#f59e0b" fill-opacity="0.55"/>
  <circle cx="320" cy="150" r="75" fill="#10b981" fill-opacity="0.55"/>
  <text x="120" y="150" text-anchor="middle" font-family="monospace" font-size="12" fill="#1e293b">code</text>
  <text x="360" y="150" text-anchor="middle" font-family="monospace" font-size="12" fill="#1e293b">analogy</text>
  <text x="240" y="150" text-anchor="middle" font-family="monospace" font-size="12" fill="#1e293b">idea</text>
  <line x1="160" y1="233" x2="320" y2="233" stroke="#94a3b8" stroke-width="2" stroke-dasharray="6 4"/>
  <text x="240" y="305" text-anchor="middle" font-family="monospace" font-size="11" fill="#64748b">%s</text>
</svg>`

const genericSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="480" height="320" viewBox="0 0 480 320">
  <rect width="480" height="320" fill="#f8fafc"/>
  <text x="240" y="30" text-anchor="middle" font-family="monospace" font-size="16" fill="#0f172a">Code Overview</text>
  <rect x="60" y="70" width="360" height="170" rx="10" fill="#e2e8f0"/>
  <rect x="90" y="100" width="90" height="40" rx="6" fill="#0ea5e9"/>
  <rect x="195" y="100" width="90" height="40" rx="6" fill="#0ea5e9"/>
  <rect x="300" y="100" width="90" height="40" rx="6" fill="#0ea5e9"/>
  <line x1="135" y1="140" x2="240" y2="190" stroke="#64748b" stroke-width="2"/>
  <line x1="240" y1="140" x2="240" y2="190" stroke="#64748b" stroke-width="2"/>
  <line x1="345" y1="140" x2="240" y2="190" stroke="#64748b" stroke-width="2"/>
  <rect x="195" y="190" width="90" height="40" rx="6" fill="#0284c7"/>
  <text x="240" y="305" text-anchor="middle" font-family="monospace" font-size="11" fill="#64748b">%s</text>
</svg>`

const fallbackSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="480" height="120" viewBox="0 0 480 120">
  <rect width="480" height="120" fill="#f1f5f9"/>
  <text x="240" y="55" text-anchor="middle" font-family="monospace" font-size="14" fill="#475569">Diagram unavailable</text>
  <text x="240" y="80" text-anchor="middle" font-family="monospace" font-size="11" fill="#94a3b8">See the written analysis above</text>
</svg>`
