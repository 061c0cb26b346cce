package extract

const sampleTable = `{| class="wikitable sortable"
|-
! Country
! Since
! ISO
! Area
! Street
! Notes
|-
| [[Postal codes in Andorra|Andorra]]
| 2004
| [[ISO 3166-1:AD|AD]]
| CCNNN
|
| Each parish has its own post code.
|-
| [[Postal codes in Peru|Peru]]
|
| [[ISO 3166-1:PE|PE]]
| NNNNN, CC NNNN
| - no codes -
|-.
| [[Postal codes in Japan|Japan]]
| 1968

| [[ISO 3166-1:JP|JP]]
|-
| [[Postal codes in Canada|Canada]]
| 1971
| [[ISO 3166-1:CA|CA]]
| ANA NAN
|
| The letters D, F, I, O, Q, and U are not used.
Introduced in Ottawa.
|-
| [[Postal codes in Nowhere|Nowhere]]
|-
| [[Postal codes in Andorra|Andorra la Vella]]
|
| [[ISO 3166-1:AD|AD]]
|
| CC NNN
| Second row.
|-
| [[Postal codes in Germany|Germany]] || 1993 || [[ISO 3166-1:DE|DE]] || NNNNN || || Postleitzahl.
|}
Text after the table.
|-
| [[Postal codes in Ignored|Ignored]]
`
