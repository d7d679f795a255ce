package catalog

import "github.com/kdeldycke/extra-platforms-sub001/pkg/trait"

// architectures maps Go's GOARCH values to canonical CPU architecture names.
func architectures() *trait.Builder {
	const c = trait.CategoryArchitecture
	return trait.NewBuilder(c).
		Unknown("Unknown architecture", "❓").
		Canonical("All architectures", "🏛️").
		Add(
			trait.New(c, "aarch64", "ARM64 (AArch64)", "📱", "https://en.wikipedia.org/wiki/AArch64", goarch("arm64")),
			trait.New(c, "arm", "ARM (32-bit)", "📱", "https://en.wikipedia.org/wiki/ARM_architecture_family", goarch("arm")),
			trait.New(c, "i386", "Intel 386", "𝗶", "https://en.wikipedia.org/wiki/I386", goarch("386")),
			trait.New(c, "x86_64", "x86-64 (AMD64)", "🖥️", "https://en.wikipedia.org/wiki/X86-64", goarch("amd64")),
			trait.New(c, "loongarch64", "LoongArch (64-bit)", "🐉", "https://en.wikipedia.org/wiki/Loongson", goarch("loong64")),
			trait.New(c, "mips", "MIPS (32-bit, big-endian)", "🔲", "https://en.wikipedia.org/wiki/MIPS_architecture", goarch("mips")),
			trait.New(c, "mipsel", "MIPS (32-bit, little-endian)", "🔲", "https://en.wikipedia.org/wiki/MIPS_architecture", goarch("mipsle")),
			trait.New(c, "mips64", "MIPS (64-bit, big-endian)", "🔲", "https://en.wikipedia.org/wiki/MIPS_architecture", goarch("mips64")),
			trait.New(c, "mips64el", "MIPS (64-bit, little-endian)", "🔲", "https://en.wikipedia.org/wiki/MIPS_architecture", goarch("mips64le")),
			trait.New(c, "ppc64", "PowerPC 64-bit (big-endian)", "⚡", "https://en.wikipedia.org/wiki/Ppc64", goarch("ppc64")),
			trait.New(c, "ppc64le", "PowerPC 64-bit (little-endian)", "⚡", "https://en.wikipedia.org/wiki/Ppc64", goarch("ppc64le")),
			trait.New(c, "riscv64", "RISC-V (64-bit)", "Ⅴ", "https://en.wikipedia.org/wiki/RISC-V", goarch("riscv64")),
			trait.New(c, "s390x", "IBM z/Architecture", "🏢", "https://en.wikipedia.org/wiki/Z/Architecture", goarch("s390x")),
			trait.New(c, "wasm32", "WebAssembly (32-bit)", "🌐", "https://webassembly.org", goarch("wasm")),
		).
		Group("all_arm", "ARM architectures", "📱", "aarch64", "arm").
		Group("x86", "x86 family", "𝗫", "i386", "x86_64").
		Group("all_mips", "MIPS architectures", "🔲", "mips", "mipsel", "mips64", "mips64el").
		Group("powerpc", "PowerPC family", "⚡", "ppc64", "ppc64le").
		Group("ibm_mainframe", "IBM mainframes", "🏢", "s390x").
		Group("webassembly", "WebAssembly", "🌐", "wasm32").
		Group("bits_64", "64-bit architectures", "6️⃣",
			"aarch64", "x86_64", "loongarch64", "mips64", "mips64el",
			"ppc64", "ppc64le", "riscv64", "s390x")
}
