package rtfsub

// latexToUnicode maps a LaTeX command (including braced forms such as
// "\mathbb{R}") to the single Unicode character it stands for. Longest-key-
// first matching in Convert lets a braced form like "\mathbb{R}" win over a
// bare prefix match on "\mathbb".
//
// The set below covers the symbol families clinical/statistical tables
// commonly carry: Greek letters, comparison/set operators, arrows, and the
// handful of blackboard-bold letters used in formula footnotes.
var latexToUnicode = map[string]rune{
	// Greek letters (lowercase)
	`\alpha`:   'α',
	`\beta`:    'β',
	`\gamma`:   'γ',
	`\delta`:   'δ',
	`\epsilon`: 'ε',
	`\zeta`:    'ζ',
	`\eta`:     'η',
	`\theta`:   'θ',
	`\iota`:    'ι',
	`\kappa`:   'κ',
	`\lambda`:  'λ',
	`\mu`:      'μ',
	`\nu`:      'ν',
	`\xi`:      'ξ',
	`\pi`:      'π',
	`\rho`:     'ρ',
	`\sigma`:   'σ',
	`\tau`:     'τ',
	`\upsilon`: 'υ',
	`\phi`:     'φ',
	`\chi`:     'χ',
	`\psi`:     'ψ',
	`\omega`:   'ω',

	// Greek letters (uppercase)
	`\Gamma`:   'Γ',
	`\Delta`:   'Δ',
	`\Theta`:   'Θ',
	`\Lambda`:  'Λ',
	`\Xi`:      'Ξ',
	`\Pi`:      'Π',
	`\Sigma`:   'Σ',
	`\Upsilon`: 'Υ',
	`\Phi`:     'Φ',
	`\Psi`:     'Ψ',
	`\Omega`:   'Ω',

	// Operators and relations
	`\pm`:      '±',
	`\mp`:      '∓',
	`\times`:   '×',
	`\div`:     '÷',
	`\cdot`:    '·',
	`\leq`:     '≤',
	`\geq`:     '≥',
	`\neq`:     '≠',
	`\approx`:  '≈',
	`\equiv`:   '≡',
	`\propto`:  '∝',
	`\infty`:   '∞',
	`\sum`:     '∑',
	`\prod`:    '∏',
	`\int`:     '∫',
	`\partial`: '∂',
	`\nabla`:   '∇',
	`\sqrt`:    '√',
	`\subset`:  '⊂',
	`\supset`:  '⊃',
	`\in`:      '∈',
	`\notin`:   '∉',
	`\cup`:     '∪',
	`\cap`:     '∩',
	`\emptyset`: '∅',
	`\forall`:  '∀',
	`\exists`:  '∃',

	// Arrows
	`\rightarrow`: '→',
	`\leftarrow`:  '←',
	`\Rightarrow`: '⇒',
	`\Leftarrow`:  '⇐',
	`\leftrightarrow`: '↔',

	// Typographic symbols commonly found in footnotes
	`\dagger`:     '†',
	`\ddagger`:    '‡',
	`\S`:          '§',
	`\P`:          '¶',
	`\copyright`:  '©',
	`\textregistered`: '®',
	`\texttrademark`:  '™',
	`\degree`:     '°',

	// Blackboard-bold letters, as explicit braced keys (spec.md §4.2)
	`\mathbb{R}`: 'ℝ',
	`\mathbb{N}`: 'ℕ',
	`\mathbb{Z}`: 'ℤ',
	`\mathbb{Q}`: 'ℚ',
	`\mathbb{C}`: 'ℂ',
}
